package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/avelinejewellery/aveline/internal/email"
	"github.com/avelinejewellery/aveline/internal/money"
	"github.com/avelinejewellery/aveline/storage"
	"github.com/avelinejewellery/aveline/storage/db"
)

const (
	// GracePeriod is how long a captured email can sit unconverted before
	// the cart counts as abandoned.
	GracePeriod = 5 * time.Minute

	// ScanInterval is how often the recovery scan runs.
	ScanInterval = 5 * time.Minute

	// BatchSize caps how many attempts one scan processes.
	BatchSize = 10

	// relatedProductCount is how many cross-sell products each recovery
	// email carries.
	relatedProductCount = 3
)

// RecoveryResult summarises what happened to one checkout attempt during a
// recovery run.
type RecoveryResult struct {
	GuestSessionID string `json:"guest_session_id"`
	Email          string `json:"email"`
	Sent           bool   `json:"sent"`
	Reason         string `json:"reason,omitempty"`
}

// CartRecoverer finds stale, unconverted checkout attempts and sends each at
// most one recovery email. Rows are claimed with a conditional update before
// sending, so overlapping runs cannot double-send.
type CartRecoverer struct {
	storage      *storage.Storage
	emailService *email.Service
	baseURL      string
	ticker       *time.Ticker
	done         chan bool
}

func NewCartRecoverer(storage *storage.Storage, emailService *email.Service, baseURL string) *CartRecoverer {
	return &CartRecoverer{
		storage:      storage,
		emailService: emailService,
		baseURL:      baseURL,
		done:         make(chan bool),
	}
}

// Start begins the background recovery scan
func (r *CartRecoverer) Start(ctx context.Context) {
	slog.Info("starting abandoned cart recoverer", "interval", ScanInterval, "grace_period", GracePeriod)

	// Run immediately on start
	if _, err := r.RunOnce(ctx); err != nil {
		slog.Error("abandoned cart scan failed", "error", err)
	}

	r.ticker = time.NewTicker(ScanInterval)

	go func() {
		for {
			select {
			case <-r.ticker.C:
				if _, err := r.RunOnce(ctx); err != nil {
					slog.Error("abandoned cart scan failed", "error", err)
				}
			case <-r.done:
				slog.Info("abandoned cart recoverer stopped")
				return
			}
		}
	}()
}

// Stop stops the background job
func (r *CartRecoverer) Stop() {
	if r.ticker != nil {
		r.ticker.Stop()
	}
	close(r.done)
}

// RunOnce performs a single recovery scan and returns the per-row summary. A
// storage error aborts the batch; a send failure only fails its own row.
func (r *CartRecoverer) RunOnce(ctx context.Context) ([]RecoveryResult, error) {
	cutoff := time.Now().UTC().Add(-GracePeriod)

	attempts, err := r.storage.Queries.ListAbandonedCheckoutAttempts(ctx, db.ListAbandonedCheckoutAttemptsParams{
		EmailCapturedAt: cutoff,
		Limit:           BatchSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list abandoned checkout attempts: %w", err)
	}

	results := make([]RecoveryResult, 0, len(attempts))
	for _, attempt := range attempts {
		results = append(results, r.processAttempt(ctx, attempt))
	}

	sent := 0
	for _, res := range results {
		if res.Sent {
			sent++
		}
	}
	if len(results) > 0 {
		slog.Info("abandoned cart scan complete", "candidates", len(results), "sent", sent)
	} else {
		slog.Debug("abandoned cart scan complete", "candidates", 0)
	}

	return results, nil
}

func (r *CartRecoverer) processAttempt(ctx context.Context, attempt db.CheckoutAttempt) RecoveryResult {
	result := RecoveryResult{
		GuestSessionID: attempt.GuestSessionID,
		Email:          attempt.Email,
	}

	// An order placed after the email was captured means the customer
	// converted on their own; suppress the email.
	orderCount, err := r.storage.Queries.CountOrdersForEmailAfter(ctx, db.CountOrdersForEmailAfterParams{
		ContactEmail: attempt.Email,
		CreatedAt:    attempt.EmailCapturedAt.Time,
	})
	if err != nil {
		result.Reason = "order lookup failed: " + err.Error()
		slog.Error("failed to check orders for checkout attempt", "guest_session_id", attempt.GuestSessionID, "error", err)
		return result
	}

	if orderCount > 0 {
		affected, err := r.storage.Queries.SuppressAbandonedCartEmail(ctx, attempt.GuestSessionID)
		if err != nil {
			result.Reason = "suppress failed: " + err.Error()
			slog.Error("failed to suppress abandoned cart email", "guest_session_id", attempt.GuestSessionID, "error", err)
			return result
		}
		if affected == 0 {
			result.Reason = "claimed by concurrent run"
			return result
		}
		result.Reason = "order already completed"
		slog.Info("suppressed recovery email, order exists", "guest_session_id", attempt.GuestSessionID)
		return result
	}

	// Claim the row before sending. Zero rows affected means another run
	// won it since our query.
	claimed, err := r.storage.Queries.ClaimAbandonedCartEmail(ctx, attempt.GuestSessionID)
	if err != nil {
		result.Reason = "claim failed: " + err.Error()
		slog.Error("failed to claim checkout attempt", "guest_session_id", attempt.GuestSessionID, "error", err)
		return result
	}
	if claimed == 0 {
		result.Reason = "claimed by concurrent run"
		return result
	}

	data, err := r.buildRecoveryEmail(ctx, attempt)
	if err != nil {
		// Unresolvable carts keep their claim so they don't churn on
		// every scan.
		result.Reason = err.Error()
		slog.Warn("skipping recovery email", "guest_session_id", attempt.GuestSessionID, "reason", err.Error())
		return result
	}

	if err := r.emailService.SendAbandonedCartRecovery(ctx, data); err != nil {
		// Release the claim so the next scan retries this row.
		if releaseErr := r.storage.Queries.ReleaseAbandonedCartEmail(ctx, attempt.GuestSessionID); releaseErr != nil {
			slog.Error("failed to release claim after send failure", "guest_session_id", attempt.GuestSessionID, "error", releaseErr)
		}
		result.Reason = "send failed: " + err.Error()
		slog.Error("failed to send recovery email", "guest_session_id", attempt.GuestSessionID, "email", attempt.Email, "error", err)
		return result
	}

	result.Sent = true
	slog.Info("sent recovery email", "guest_session_id", attempt.GuestSessionID, "email", attempt.Email)
	return result
}

type cartItem struct {
	ID       string `json:"id"`
	Quantity int64  `json:"quantity"`
}

func (r *CartRecoverer) buildRecoveryEmail(ctx context.Context, attempt db.CheckoutAttempt) (*email.AbandonedCartData, error) {
	var cart []cartItem
	if err := json.Unmarshal([]byte(attempt.CartJson), &cart); err != nil {
		return nil, fmt.Errorf("invalid cart json: %w", err)
	}

	var items []email.Item
	var total money.Pence
	var firstProduct *db.Product

	for _, line := range cart {
		product, err := r.storage.Queries.GetProduct(ctx, line.ID)
		if err != nil {
			slog.Warn("cart references unknown product", "product_id", line.ID, "guest_session_id", attempt.GuestSessionID)
			continue
		}
		if firstProduct == nil {
			p := product
			firstProduct = &p
		}

		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
		}
		items = append(items, email.Item{
			Name:      product.Name,
			ImageURL:  product.ImageUrl,
			Quantity:  quantity,
			UnitPrice: money.Pence(product.PricePence),
		})
		total += money.Pence(product.PricePence) * money.Pence(quantity)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("cart has no resolvable items")
	}

	related, err := r.storage.Queries.ListRelatedProducts(ctx, db.ListRelatedProductsParams{
		ID:       firstProduct.ID,
		Category: firstProduct.Category,
		Limit:    relatedProductCount,
	})
	if err != nil {
		slog.Warn("failed to load related products", "error", err)
	}

	relatedProducts := make([]email.RelatedProduct, 0, len(related))
	for _, p := range related {
		relatedProducts = append(relatedProducts, email.RelatedProduct{
			Name:     p.Name,
			ImageURL: p.ImageUrl,
			Price:    money.Pence(p.PricePence),
		})
	}

	return &email.AbandonedCartData{
		CustomerEmail:   attempt.Email,
		Items:           items,
		Total:           total,
		CheckoutURL:     fmt.Sprintf("%s/checkout?session=%s", r.baseURL, attempt.GuestSessionID),
		RelatedProducts: relatedProducts,
	}, nil
}
