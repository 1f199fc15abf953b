// Package session owns the state of one farmer's visit: authentication,
// the farm profile and the advisory transcript. It decides which view is
// shown and schedules the delayed bot replies.
package session

import (
	"context"
	"farm-advisor/advisor"
	"farm-advisor/auth"
	"farm-advisor/contract"
	"farm-advisor/domain"
	"farm-advisor/domain/event"
	"farm-advisor/errors"
	"farm-advisor/intake"
	"farm-advisor/observability"
	"farm-advisor/runtime"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultReplyDelay = time.Second

type Config struct {
	ReplyDelay time.Duration
	// MaxPendingReplies bounds replies in flight. Zero means unbounded.
	MaxPendingReplies int
}

// Controller is safe for concurrent use. Events are published after the
// internal lock is released, so sinks may call back into the controller.
type Controller struct {
	log        *slog.Logger
	cfg        Config
	responder  *advisor.Responder
	scheduler  contract.Scheduler
	transcript contract.ITranscriptRepository
	fanout     *runtime.EventFanout
	metrics    *observability.Metrics
	now        func() time.Time

	mu            sync.Mutex
	authenticated bool
	profile       *domain.FarmProfile
	generation    domain.Generation
	// pending maps the triggering user message to its scheduled reply.
	pending map[uuid.UUID]contract.CancelFunc
}

func NewController(
	log *slog.Logger,
	cfg Config,
	responder *advisor.Responder,
	scheduler contract.Scheduler,
	transcript contract.ITranscriptRepository,
	fanout *runtime.EventFanout,
	metrics *observability.Metrics,
) *Controller {
	return &Controller{
		log:        log,
		cfg:        cfg,
		responder:  responder,
		scheduler:  scheduler,
		transcript: transcript,
		fanout:     fanout,
		metrics:    metrics,
		now:        time.Now,
		generation: 1,
		pending:    make(map[uuid.UUID]contract.CancelFunc),
	}
}

// Login accepts any non-empty pair. Credentials are not kept.
func (c *Controller) Login(username, password string) error {
	if err := auth.Check(domain.Credentials{Username: username, Password: password}); err != nil {
		return err
	}

	c.mu.Lock()
	if c.authenticated {
		c.mu.Unlock()
		return nil
	}
	c.authenticated = true
	evt := c.viewChangedLocked()
	c.mu.Unlock()

	c.metrics.SessionsStartedTotal.Inc()
	c.log.Info("Farmer logged in", "user", username, "generation", evt.Generation)
	c.publish(evt)
	return nil
}

// SubmitProfile stores the farm profile and opens the transcript with a greeting.
func (c *Controller) SubmitProfile(profile domain.FarmProfile) error {
	if err := intake.Validate(profile); err != nil {
		c.metrics.ProfileRejectionsTotal.Inc()
		return err
	}

	c.mu.Lock()
	switch {
	case !c.authenticated:
		c.mu.Unlock()
		c.metrics.ProfileRejectionsTotal.Inc()
		return errors.ErrNotAuthenticated
	case c.profile != nil:
		c.mu.Unlock()
		c.metrics.ProfileRejectionsTotal.Inc()
		return errors.ErrProfileAlreadySet
	}

	greeting := domain.Message{
		ID:        uuid.New(),
		Text:      advisor.Greeting(profile),
		Sender:    domain.SenderBot,
		CreatedAt: c.now(),
	}
	if err := c.transcript.Append(c.generation, greeting); err != nil {
		c.mu.Unlock()
		return fmt.Errorf("greeting not stored: %w", err)
	}
	stored := profile
	c.profile = &stored
	events := []event.DomainEvent{
		c.viewChangedLocked(),
		event.MessageAppended{Generation: c.generation, Message: greeting},
	}
	c.mu.Unlock()

	c.metrics.MessagesTotal.WithLabelValues(string(domain.SenderBot)).Inc()
	c.log.Info("Farm profile submitted",
		"plot_size", profile.PlotSize, "soil", profile.SoilType,
		"location", profile.Location, "crop", profile.CropType)
	c.publish(events...)
	return nil
}

// Logout returns to the initial state. Pending replies are cancelled and
// the finished session's transcript is dropped.
func (c *Controller) Logout() {
	c.mu.Lock()
	if !c.authenticated && c.profile == nil {
		c.mu.Unlock()
		return
	}
	finished := c.generation
	for id, cancel := range c.pending {
		cancel()
		delete(c.pending, id)
	}
	c.authenticated = false
	c.profile = nil
	c.generation++
	c.metrics.PendingReplies.Set(0)
	evt := c.viewChangedLocked()
	c.mu.Unlock()

	if err := c.transcript.Drop(finished); err != nil {
		c.log.Warn("Transcript not dropped", "generation", finished, "error", err)
	}
	c.log.Info("Farmer logged out", "generation", finished)
	c.publish(evt)
}

// SendMessage appends the user's message and schedules exactly one bot reply.
// Whitespace-only text is ignored.
func (c *Controller) SendMessage(text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	c.mu.Lock()
	if c.profile == nil {
		c.mu.Unlock()
		return errors.ErrNoProfile
	}
	if c.cfg.MaxPendingReplies > 0 && len(c.pending) >= c.cfg.MaxPendingReplies {
		c.mu.Unlock()
		return fmt.Errorf("%w: limit is %d", errors.ErrTooManyPendingReplies, c.cfg.MaxPendingReplies)
	}

	gen := c.generation
	profile := *c.profile
	message := domain.Message{
		ID:        uuid.New(),
		Text:      text,
		Sender:    domain.SenderUser,
		CreatedAt: c.now(),
	}
	if err := c.transcript.Append(gen, message); err != nil {
		c.mu.Unlock()
		return fmt.Errorf("message not stored: %w", err)
	}
	c.pending[message.ID] = c.scheduler.Schedule(c.cfg.ReplyDelay, func() {
		c.deliverReply(gen, profile, message)
	})
	c.metrics.PendingReplies.Set(float64(len(c.pending)))
	c.mu.Unlock()

	c.metrics.MessagesTotal.WithLabelValues(string(domain.SenderUser)).Inc()
	c.publish(event.MessageAppended{Generation: gen, Message: message})
	return nil
}

func (c *Controller) deliverReply(gen domain.Generation, profile domain.FarmProfile, trigger domain.Message) {
	c.mu.Lock()
	if gen != c.generation {
		current := c.generation
		c.mu.Unlock()
		c.metrics.RepliesDiscardedTotal.Inc()
		c.log.Debug("Stale reply discarded", "generation", gen, "current", current, "reply_to", trigger.ID)
		c.publish(event.ReplyDiscarded{Generation: gen, Current: current, ReplyTo: trigger.ID})
		return
	}
	delete(c.pending, trigger.ID)

	reply := c.responder.Respond(profile, trigger.Text)
	message := domain.Message{
		ID:        uuid.New(),
		Text:      reply.Text,
		Sender:    domain.SenderBot,
		CreatedAt: c.now(),
	}
	err := c.transcript.Append(gen, message)
	c.metrics.PendingReplies.Set(float64(len(c.pending)))
	c.mu.Unlock()

	if err != nil {
		c.log.Error("Reply not stored", "reply_to", trigger.ID, "error", err)
		return
	}
	c.metrics.MessagesTotal.WithLabelValues(string(domain.SenderBot)).Inc()
	c.metrics.RuleMatchesTotal.WithLabelValues(reply.Rule).Inc()
	c.log.Debug("Reply delivered", "rule", reply.Rule, "reply_to", trigger.ID)
	c.publish(event.MessageAppended{Generation: gen, Message: message})
}

// View is evaluated from the current state on every call.
func (c *Controller) View() domain.View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.SelectView(c.authenticated, c.profile != nil)
}

// Profile returns a copy of the profile, if one was submitted.
func (c *Controller) Profile() (domain.FarmProfile, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.profile == nil {
		return domain.FarmProfile{}, false
	}
	return *c.profile, true
}

func (c *Controller) Generation() domain.Generation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Pending is the number of replies scheduled and not yet delivered.
func (c *Controller) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Transcript returns the current session's messages in display order.
func (c *Controller) Transcript() ([]domain.Message, error) {
	return c.transcript.List(c.Generation())
}

func (c *Controller) viewChangedLocked() event.ViewChanged {
	return event.ViewChanged{
		Generation: c.generation,
		View:       domain.SelectView(c.authenticated, c.profile != nil),
		At:         c.now(),
	}
}

func (c *Controller) publish(events ...event.DomainEvent) {
	for _, evt := range events {
		c.fanout.Fanout(context.Background(), evt)
	}
}
