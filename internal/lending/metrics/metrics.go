package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	BorrowersRegistered prometheus.Counter
	BooksRegistered     prometheus.Counter
	LoansStarted        prometheus.Counter
	LoansCompleted      prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		BorrowersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "biblio_borrowers_registered_total",
			Help: "Total number of borrowers registered",
		}),
		BooksRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "biblio_books_registered_total",
			Help: "Total number of physical copies registered",
		}),
		LoansStarted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "biblio_loans_started_total",
			Help: "Total number of successful borrow operations",
		}),
		LoansCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "biblio_loans_completed_total",
			Help: "Total number of successful return operations",
		}),
	}
}

func (m *Metrics) IncrementBorrowersRegistered() {
	m.BorrowersRegistered.Inc()
}

func (m *Metrics) IncrementBooksRegistered() {
	m.BooksRegistered.Inc()
}

func (m *Metrics) IncrementLoansStarted() {
	m.LoansStarted.Inc()
}

func (m *Metrics) IncrementLoansCompleted() {
	m.LoansCompleted.Inc()
}
