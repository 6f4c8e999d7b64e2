package entitlement

import (
	"context"
	"log/slog"
	"time"

	"request-market/internal/domain/user"
	"request-market/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCounterUnavailable = errs.New("usage counter unavailable")

// UsageCounter is the atomic monthly counter primitive. Increment must be an
// atomic upsert-increment keyed by (userID, period): concurrent calls for the
// same key may never lose updates.
type UsageCounter interface {
	Get(ctx context.Context, userID uuid.UUID, period string) (int, error)
	Increment(ctx context.Context, userID uuid.UUID, period string) (int, error)
}

type Entitlements struct {
	CanViewContact bool `json:"can_view_contact"`
	CanMessage     bool `json:"can_message"`
	CanRespond     bool `json:"can_respond"`
	ResponsesUsed  int  `json:"responses_used"`
	ResponsesLimit int  `json:"responses_limit"`
}

// LimitFunc resolves the per-period response limit for a user. Pluggable so
// paid tiers can override it later; the current behavior is a flat free-tier
// limit for everyone.
type LimitFunc func(userID uuid.UUID, role user.Role) int

func FixedLimit(limit int) LimitFunc {
	return func(uuid.UUID, user.Role) int { return limit }
}

type Evaluator struct {
	counter  UsageCounter
	limitFor LimitFunc
	logger   *slog.Logger
}

func NewEvaluator(counter UsageCounter, limitFor LimitFunc, logger *slog.Logger) *Evaluator {
	return &Evaluator{counter: counter, limitFor: limitFor, logger: logger}
}

// PeriodKey derives the quota period from a point in time. A new month simply
// starts a new counter key; old counters are never reset.
func PeriodKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// GetEntitlements never fails: if the counter store is unreachable the count
// degrades to zero, favoring availability over strict quota enforcement.
func (e *Evaluator) GetEntitlements(ctx context.Context, userID uuid.UUID, role user.Role, now time.Time) Entitlements {
	count, err := e.counter.Get(ctx, userID, PeriodKey(now))
	if err != nil {
		e.logger.Warn("usage counter read failed, assuming zero usage",
			"user_id", userID, "error", err)
		count = 0
	}

	limit := e.limitFor(userID, role)
	withinQuota := count < limit

	return Entitlements{
		CanViewContact: withinQuota,
		CanMessage:     withinQuota,
		CanRespond:     withinQuota,
		ResponsesUsed:  count,
		ResponsesLimit: limit,
	}
}

func (e *Evaluator) IncrementUsage(ctx context.Context, userID uuid.UUID, now time.Time) error {
	if _, err := e.counter.Increment(ctx, userID, PeriodKey(now)); err != nil {
		return errs.Mark(err, ErrCounterUnavailable)
	}
	return nil
}
