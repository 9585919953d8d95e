package queries

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"bizcore/clients"
	"bizcore/core"
	"bizcore/models"
	"bizcore/services/timewin"
)

const (
	// MaxRecentRecords bounds every list-returning query
	MaxRecentRecords = 50
	// MaxClientMatches bounds the client name search
	MaxClientMatches = 10
)

// LeadsRepository is the subset of the leads store the query handlers need
type LeadsRepository interface {
	CountLeadsSince(ctx context.Context, since time.Time) (int, error)
	CountLeadsByStageSince(ctx context.Context, since time.Time) (map[string]int, error)
	ListRecentLeads(ctx context.Context, since time.Time, limit int) ([]models.Lead, error)
}

// ClientsRepository is the subset of the clients store the query handlers need
type ClientsRepository interface {
	SearchClientsByName(ctx context.Context, name string, limit int) ([]models.Client, error)
	CountClientsSince(ctx context.Context, since time.Time) (int, error)
}

// SupportTicketsRepository is the subset of the support store the query
// handlers need
type SupportTicketsRepository interface {
	CountTicketsSince(ctx context.Context, since time.Time) (int, error)
	CountOpenTickets(ctx context.Context) (int, error)
	CountTicketsByStatusSince(ctx context.Context, since time.Time) (map[string]int, error)
	ListRecentTickets(ctx context.Context, since time.Time, limit int) ([]models.SupportTicket, error)
}

// PaymentsRepository is the subset of the payments store the query handlers
// need
type PaymentsRepository interface {
	SumPaymentsSince(ctx context.Context, since time.Time) (decimal.Decimal, error)
	CountPaymentsSince(ctx context.Context, since time.Time) (int, error)
	ListRecentPayments(ctx context.Context, since time.Time, limit int) ([]models.Payment, error)
}

// QueriesService implements the read-only command handlers. Every handler
// returns a best-effort QueryResult: a failing sub-query degrades its field
// to zero/empty and is logged, never propagated to the dispatcher.
type QueriesService struct {
	leadsRepo    LeadsRepository
	clientsRepo  ClientsRepository
	ticketsRepo  SupportTicketsRepository
	paymentsRepo PaymentsRepository
	taskTracker  clients.TaskTrackerClient
}

func NewQueriesService(
	leadsRepo LeadsRepository,
	clientsRepo ClientsRepository,
	ticketsRepo SupportTicketsRepository,
	paymentsRepo PaymentsRepository,
	taskTracker clients.TaskTrackerClient,
) *QueriesService {
	return &QueriesService{
		leadsRepo:    leadsRepo,
		clientsRepo:  clientsRepo,
		ticketsRepo:  ticketsRepo,
		paymentsRepo: paymentsRepo,
		taskTracker:  taskTracker,
	}
}

// Metrics aggregates the headline numbers for the resolved window. The four
// sub-counts run concurrently and are combined before the handler returns.
func (s *QueriesService) Metrics(ctx context.Context, cmdCtx models.CommandContext) models.QueryResult {
	since := timewin.Resolve(cmdCtx.TimeframeHint, time.Now())
	log.Printf("📋 Starting metrics query for window since %s", since.Format(time.RFC3339))

	snapshot := models.MetricsSnapshot{WindowStart: since, Revenue: decimal.Zero}

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		count, err := s.leadsRepo.CountLeadsSince(ctx, since)
		if err != nil {
			log.Printf("⚠️ Metrics lead count failed, defaulting to 0: %v", err)
			return
		}
		snapshot.NewLeads = count
	}()

	go func() {
		defer wg.Done()
		count, err := s.clientsRepo.CountClientsSince(ctx, since)
		if err != nil {
			log.Printf("⚠️ Metrics client count failed, defaulting to 0: %v", err)
			return
		}
		snapshot.NewClients = count
	}()

	go func() {
		defer wg.Done()
		count, err := s.ticketsRepo.CountOpenTickets(ctx)
		if err != nil {
			log.Printf("⚠️ Metrics open ticket count failed, defaulting to 0: %v", err)
			return
		}
		snapshot.OpenTickets = count
	}()

	go func() {
		defer wg.Done()
		total, err := s.paymentsRepo.SumPaymentsSince(ctx, since)
		if err != nil {
			log.Printf("⚠️ Metrics revenue sum failed, defaulting to 0: %v", err)
			return
		}
		snapshot.Revenue = total
	}()

	wg.Wait()

	log.Printf("✅ Metrics query completed: %d leads, %d clients, %d open tickets",
		snapshot.NewLeads, snapshot.NewClients, snapshot.OpenTickets)
	return models.QueryResult{Data: snapshot}
}

// Client searches clients by company or contact name, case-insensitive and
// partial. Zero matches yield the NoMatches sentinel rather than an empty
// list.
func (s *QueriesService) Client(ctx context.Context, cmdCtx models.CommandContext) models.QueryResult {
	name := clientNameFromContext(cmdCtx)
	log.Printf("📋 Starting client query for %q", name)

	matches, err := s.clientsRepo.SearchClientsByName(ctx, name, MaxClientMatches)
	if err != nil {
		log.Printf("⚠️ Client search failed, returning no matches: %v", err)
		matches = nil
	}

	if len(matches) == 0 {
		return models.QueryResult{Data: models.ClientMatches{Query: name, NoMatches: true}}
	}

	log.Printf("✅ Client query completed with %d matches", len(matches))
	return models.QueryResult{Data: models.ClientMatches{Query: name, Matches: matches}}
}

// Leads reports the lead total, a per-stage tally, and the most recent leads
// in the resolved window.
func (s *QueriesService) Leads(ctx context.Context, cmdCtx models.CommandContext) models.QueryResult {
	since := timewin.Resolve(cmdCtx.TimeframeHint, time.Now())
	log.Printf("📋 Starting leads query for window since %s", since.Format(time.RFC3339))

	stats := models.LeadStats{WindowStart: since, ByStage: map[string]int{}}

	if total, err := s.leadsRepo.CountLeadsSince(ctx, since); err != nil {
		log.Printf("⚠️ Lead count failed, defaulting to 0: %v", err)
	} else {
		stats.Total = total
	}

	if byStage, err := s.leadsRepo.CountLeadsByStageSince(ctx, since); err != nil {
		log.Printf("⚠️ Lead stage tally failed, defaulting to empty: %v", err)
	} else {
		stats.ByStage = byStage
	}

	if recent, err := s.leadsRepo.ListRecentLeads(ctx, since, MaxRecentRecords); err != nil {
		log.Printf("⚠️ Recent leads listing failed, defaulting to empty: %v", err)
	} else {
		stats.Recent = recent
	}

	log.Printf("✅ Leads query completed: %d leads", stats.Total)
	return models.QueryResult{Data: stats}
}

// Revenue reports the completed payment total, count, and most recent
// payments in the resolved window.
func (s *QueriesService) Revenue(ctx context.Context, cmdCtx models.CommandContext) models.QueryResult {
	since := timewin.Resolve(cmdCtx.TimeframeHint, time.Now())
	log.Printf("📋 Starting revenue query for window since %s", since.Format(time.RFC3339))

	stats := models.RevenueStats{WindowStart: since, Total: decimal.Zero}

	if total, err := s.paymentsRepo.SumPaymentsSince(ctx, since); err != nil {
		log.Printf("⚠️ Revenue sum failed, defaulting to 0: %v", err)
	} else {
		stats.Total = total
	}

	if count, err := s.paymentsRepo.CountPaymentsSince(ctx, since); err != nil {
		log.Printf("⚠️ Payment count failed, defaulting to 0: %v", err)
	} else {
		stats.PaymentCount = count
	}

	if recent, err := s.paymentsRepo.ListRecentPayments(ctx, since, MaxRecentRecords); err != nil {
		log.Printf("⚠️ Recent payments listing failed, defaulting to empty: %v", err)
	} else {
		stats.Recent = recent
	}

	log.Printf("✅ Revenue query completed: %s total over %d payments", stats.Total, stats.PaymentCount)
	return models.QueryResult{Data: stats}
}

// Support reports ticket totals, a per-status tally, and the most recent
// tickets in the resolved window.
func (s *QueriesService) Support(ctx context.Context, cmdCtx models.CommandContext) models.QueryResult {
	since := timewin.Resolve(cmdCtx.TimeframeHint, time.Now())
	log.Printf("📋 Starting support query for window since %s", since.Format(time.RFC3339))

	stats := models.SupportStats{WindowStart: since, ByStatus: map[string]int{}}

	if total, err := s.ticketsRepo.CountTicketsSince(ctx, since); err != nil {
		log.Printf("⚠️ Ticket count failed, defaulting to 0: %v", err)
	} else {
		stats.Total = total
	}

	if byStatus, err := s.ticketsRepo.CountTicketsByStatusSince(ctx, since); err != nil {
		log.Printf("⚠️ Ticket status tally failed, defaulting to empty: %v", err)
	} else {
		stats.ByStatus = byStatus
	}

	if recent, err := s.ticketsRepo.ListRecentTickets(ctx, since, MaxRecentRecords); err != nil {
		log.Printf("⚠️ Recent tickets listing failed, defaulting to empty: %v", err)
	} else {
		stats.Recent = recent
	}

	log.Printf("✅ Support query completed: %d tickets", stats.Total)
	return models.QueryResult{Data: stats}
}

// Tasks lists open tasks from the task tracker. A missing tracker yields the
// NotConfigured sentinel, which is distinct from an empty task list.
func (s *QueriesService) Tasks(ctx context.Context, cmdCtx models.CommandContext) models.QueryResult {
	log.Printf("📋 Starting tasks query")

	tasks, err := s.taskTracker.ListTasks(ctx, MaxRecentRecords)
	if err != nil {
		if core.IsNotConfiguredError(err) {
			log.Printf("⚠️ Task tracker is not configured")
			return models.QueryResult{Data: models.TaskList{NotConfigured: true}}
		}
		log.Printf("⚠️ Task listing failed, defaulting to empty: %v", err)
		return models.QueryResult{Data: models.TaskList{Tasks: []models.TrackedTask{}}}
	}

	if tasks == nil {
		tasks = []models.TrackedTask{}
	}
	if len(tasks) > MaxRecentRecords {
		tasks = tasks[:MaxRecentRecords]
	}

	log.Printf("✅ Tasks query completed with %d tasks", len(tasks))
	return models.QueryResult{Data: models.TaskList{Tasks: tasks}}
}

// command words that carry no part of a client name
var clientQueryFiller = map[string]bool{
	"show": true, "me": true, "the": true, "a": true, "an": true,
	"client": true, "clients": true, "info": true, "information": true,
	"about": true, "for": true, "on": true, "of": true, "details": true,
	"lookup": true, "look": true, "up": true, "find": true, "get": true,
	"what": true, "who": true, "is": true, "please": true, "tell": true,
}

// clientNameFromContext derives the search term from the raw command text by
// dropping filler words, so "show me info about Acme Corp" searches for
// "Acme Corp".
func clientNameFromContext(cmdCtx models.CommandContext) string {
	var kept []string
	for _, word := range strings.Fields(cmdCtx.RawText) {
		trimmed := strings.Trim(word, ".,!?\"'")
		if trimmed == "" || clientQueryFiller[strings.ToLower(trimmed)] {
			continue
		}
		kept = append(kept, trimmed)
	}

	name := strings.Join(kept, " ")
	if name == "" {
		return strings.TrimSpace(cmdCtx.RawText)
	}
	return name
}
