package services

import (
	"cafeqr_server/database"
	"cafeqr_server/structs"
	"fmt"
	"sort"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/shopspring/decimal"
)

const recentPaymentsLimit = 50

// ReportService aggregates settled payments into time-bucketed summaries. It
// is a pure read and recomputes everything from the full payment collection
// on every call; fine at café scale, a full in-memory scan that would not
// survive a much larger dataset.
type ReportService struct {
	logger *gecho.Logger
	store  *database.Store
	now    func() time.Time
}

func NewReportService(logger *gecho.Logger, store *database.Store) *ReportService {
	return &ReportService{
		logger: logger,
		store:  store,
		now:    time.Now,
	}
}

type PaymentBucket struct {
	Cash  float64 `json:"cash"`
	Card  float64 `json:"card"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

type DayBucket struct {
	Date string `json:"date"`
	Day  int    `json:"day"`
	PaymentBucket
}

type RecentPayment struct {
	structs.Payment
	TableName string `json:"table_name"`
}

type PaymentReport struct {
	Daily          PaymentBucket   `json:"daily"`
	Weekly         PaymentBucket   `json:"weekly"`
	Monthly        PaymentBucket   `json:"monthly"`
	DailyBreakdown []DayBucket     `json:"dailyBreakdown"`
	Recent         []RecentPayment `json:"recent"`
}

// PaymentReport buckets the payment collection into today, the week since
// the most recent Monday 00:00 local (a Sunday maps to the Monday six days
// prior), and the current month, plus a per-day breakdown and the most
// recent payments annotated with table names.
func (rs *ReportService) PaymentReport() (*PaymentReport, error) {
	report := &PaymentReport{}

	err := rs.store.View(func(doc *structs.Document) error {
		now := rs.now()
		todayStr := now.UTC().Format("2006-01-02")

		offset := int(now.Weekday()) - 1
		if now.Weekday() == time.Sunday {
			offset = 6
		}
		weekStart := time.Date(now.Year(), now.Month(), now.Day()-offset, 0, 0, 0, 0, now.Location())
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

		report.Daily = aggregatePayments(filterPayments(doc.Payments, func(p structs.Payment) bool {
			return p.CreatedAt.UTC().Format("2006-01-02") == todayStr
		}))
		report.Weekly = aggregatePayments(filterPayments(doc.Payments, func(p structs.Payment) bool {
			return !p.CreatedAt.Before(weekStart)
		}))
		report.Monthly = aggregatePayments(filterPayments(doc.Payments, func(p structs.Payment) bool {
			return !p.CreatedAt.Before(monthStart)
		}))

		report.DailyBreakdown = []DayBucket{}
		for d := 1; d <= now.Day(); d++ {
			dateStr := fmt.Sprintf("%04d-%02d-%02d", now.Year(), int(now.Month()), d)
			dayPayments := filterPayments(doc.Payments, func(p structs.Payment) bool {
				return p.CreatedAt.UTC().Format("2006-01-02") == dateStr
			})
			if len(dayPayments) == 0 {
				continue
			}
			report.DailyBreakdown = append(report.DailyBreakdown, DayBucket{
				Date:          dateStr,
				Day:           d,
				PaymentBucket: aggregatePayments(dayPayments),
			})
		}

		report.Recent = recentPayments(doc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

func filterPayments(payments []structs.Payment, keep func(structs.Payment) bool) []structs.Payment {
	out := []structs.Payment{}
	for _, p := range payments {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func aggregatePayments(payments []structs.Payment) PaymentBucket {
	cash := decimal.Zero
	card := decimal.Zero
	for _, p := range payments {
		amount := decimal.NewFromFloat(p.Amount)
		switch p.Method {
		case structs.PaymentMethodCash:
			cash = cash.Add(amount)
		case structs.PaymentMethodCard:
			card = card.Add(amount)
		}
	}
	return PaymentBucket{
		Cash:  cash.Round(2).InexactFloat64(),
		Card:  card.Round(2).InexactFloat64(),
		Total: cash.Add(card).Round(2).InexactFloat64(),
		Count: len(payments),
	}
}

func recentPayments(doc *structs.Document) []RecentPayment {
	sorted := append([]structs.Payment{}, doc.Payments...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > recentPaymentsLimit {
		sorted = sorted[:recentPaymentsLimit]
	}

	recent := []RecentPayment{}
	for _, p := range sorted {
		// Placeholder when the table was deleted after settlement.
		name := "?"
		if table := findTable(doc, p.TableId); table != nil {
			name = table.Name
		}
		recent = append(recent, RecentPayment{Payment: p, TableName: name})
	}
	return recent
}
