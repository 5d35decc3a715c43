package admin

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

// ReportService exports admin CSV reports. encoding/csv handles quoting, so
// commas and quotes inside names or references survive a round trip.
type ReportService struct {
	service *Service
}

func NewReportService(service *Service) *ReportService {
	return &ReportService{service: service}
}

// WriteUsersCSV streams every registered user.
func (r *ReportService) WriteUsersCSV(ctx context.Context, w io.Writer) error {
	users, _, err := r.service.users.List(ctx, "", 1_000_000, 0)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "full_name", "email", "role", "phone", "created_at"}); err != nil {
		return err
	}
	for i := range users {
		u := &users[i]
		record := []string{
			strconv.FormatInt(u.ID, 10),
			u.FullName,
			u.Email,
			string(u.Role),
			u.Phone,
			u.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePaymentsCSV streams every recorded payment.
func (r *ReportService) WritePaymentsCSV(ctx context.Context, w io.Writer) error {
	payments, err := r.service.payments.ListAll(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "user_id", "subscription_id", "reference", "amount", "status", "paid_at"}); err != nil {
		return err
	}
	for i := range payments {
		p := &payments[i]
		record := []string{
			strconv.FormatInt(p.ID, 10),
			strconv.FormatInt(p.UserID, 10),
			strconv.FormatInt(p.SubscriptionID, 10),
			p.Reference,
			strconv.FormatFloat(p.Amount, 'f', 2, 64),
			string(p.Status),
			p.PaidAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
