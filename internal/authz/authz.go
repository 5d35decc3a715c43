package authz

import (
	"servicehub/internal/domain"
)

// Principal is the authenticated identity attached to a request.
// A zero UserID means the request carried no identity claim.
type Principal struct {
	UserID int64
	Role   domain.UserRole
}

func (p Principal) Authenticated() bool { return p.UserID != 0 }

// Operation names a guarded action on a single entity kind.
type Operation string

const (
	OpCustomerPostCreate  Operation = "customer_post.create"
	OpCustomerPostDetails Operation = "customer_post.details"
	OpCustomerPostEdit    Operation = "customer_post.edit"
	OpCustomerPostDelete  Operation = "customer_post.delete"

	OpWorkerPostCreate  Operation = "worker_post.create"
	OpWorkerPostDetails Operation = "worker_post.details"
	OpWorkerPostEdit    Operation = "worker_post.edit"
	OpWorkerPostDelete  Operation = "worker_post.delete"

	OpOfferCreate Operation = "offer.create"
	OpOfferDecide Operation = "offer.decide"

	OpJobTransition Operation = "job.transition"

	OpRatingCreate Operation = "rating.create"
	OpRatingEdit   Operation = "rating.edit"

	OpSubscriptionPurchase Operation = "subscription.purchase"
	OpSubscriptionDetails  Operation = "subscription.details"
	OpPaymentDetails       Operation = "payment.details"

	OpApprovalRequest Operation = "approval.request"
	OpApprovalReview  Operation = "approval.review"

	OpAdvertisementManage Operation = "advertisement.manage"
	OpReportExport        Operation = "report.export"
)

// Decision is a pure allow/deny outcome. Deny always carries a reason and is
// distinct from "entity does not exist": callers must probe existence first.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision             { return Decision{Allowed: true} }
func deny(reason string) Decision { return Decision{Allowed: false, Reason: reason} }

// Owned is implemented by entities whose authorization depends on who created them.
type Owned interface {
	OwnedBy() int64
}

type roleSet map[domain.UserRole]bool

func roles(rs ...domain.UserRole) roleSet {
	set := make(roleSet, len(rs))
	for _, r := range rs {
		set[r] = true
	}
	return set
}

// roleGates lists the roles admitted to each operation. An operation absent
// from the table admits any authenticated role.
var roleGates = map[Operation]roleSet{
	OpCustomerPostCreate: roles(domain.RoleCustomer),
	OpCustomerPostEdit:   roles(domain.RoleCustomer, domain.RoleAdmin),
	OpCustomerPostDelete: roles(domain.RoleCustomer, domain.RoleAdmin),

	OpWorkerPostCreate: roles(domain.RoleWorker),
	OpWorkerPostEdit:   roles(domain.RoleWorker, domain.RoleAdmin),
	OpWorkerPostDelete: roles(domain.RoleWorker, domain.RoleAdmin),

	OpOfferCreate: roles(domain.RoleWorker),
	OpOfferDecide: roles(domain.RoleCustomer),

	OpRatingCreate: roles(domain.RoleCustomer, domain.RoleWorker),
	OpRatingEdit:   roles(domain.RoleCustomer, domain.RoleWorker),

	OpSubscriptionPurchase: roles(domain.RoleCustomer, domain.RoleWorker),

	OpApprovalRequest: roles(domain.RoleWorker),
	OpApprovalReview:  roles(domain.RoleAdmin),

	OpAdvertisementManage: roles(domain.RoleAdmin),
	OpReportExport:        roles(domain.RoleAdmin),
}

// ownerGate describes how the ownership rule applies to an operation.
// adminBypass=false means even an admin must own the entity (offers, payments
// and ratings restrict admins like everyone else).
type ownerGate struct {
	adminBypass bool
}

var ownerGates = map[Operation]ownerGate{
	OpCustomerPostDetails: {adminBypass: true},
	OpCustomerPostEdit:    {adminBypass: true},
	OpCustomerPostDelete:  {adminBypass: true},

	OpWorkerPostDetails: {adminBypass: true},
	OpWorkerPostEdit:    {adminBypass: true},
	OpWorkerPostDelete:  {adminBypass: true},

	// The deciding party is the owner of the customer post, not of the offer.
	OpOfferDecide: {adminBypass: false},

	OpRatingEdit: {adminBypass: false},

	OpSubscriptionDetails: {adminBypass: true},
	OpPaymentDetails:      {adminBypass: false},
}

// CanAct decides whether the principal may perform op against res.
// Rules are evaluated in fixed precedence: authentication, role membership,
// ownership. res may be nil for operations with no ownership gate, or when the
// caller is creating the entity. The decision is pure: it reads nothing beyond
// its arguments and must be re-evaluated against freshly loaded data on every
// request.
func CanAct(p Principal, op Operation, res Owned) Decision {
	if !p.Authenticated() {
		return deny("authentication required")
	}

	if gate, gated := roleGates[op]; gated && !gate[p.Role] {
		return deny("role " + string(p.Role) + " may not perform " + string(op))
	}

	if gate, gated := ownerGates[op]; gated && res != nil {
		if res.OwnedBy() == p.UserID {
			return allow()
		}
		if gate.adminBypass && p.Role == domain.RoleAdmin {
			return allow()
		}
		return deny("not the owner of the target entity")
	}

	return allow()
}
