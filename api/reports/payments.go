package reports

import (
	"cafeqr_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (rrm *ReportRoutesManager) GetPaymentReport(w http.ResponseWriter, r *http.Request) {
	report, err := rrm.reportService.PaymentReport()
	if err != nil {
		handling.RespondError(w, rrm.logger, err, "Failed to build payment report")
		return
	}

	gecho.Success(w,
		gecho.WithData(report),
		gecho.Send(),
	)
}
