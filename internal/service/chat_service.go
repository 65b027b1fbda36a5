package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prodpilot/prodpilot/internal/config"
	"github.com/prodpilot/prodpilot/internal/domain"
	"go.uber.org/zap"
)

const (
	defaultEscalationThreshold = 20
	defaultMaxOutputTokens     = 500
	defaultSessionTTL          = 2 * time.Hour

	fallbackAnswer = "Sorry, I couldn't come up with an answer just now. Please try asking again in a moment."
)

// ProductStore resolves products for session bootstrap
type ProductStore interface {
	Get(id string) (*domain.Product, error)
}

// BusinessStore resolves the business owning a product
type BusinessStore interface {
	Get(id string) (*domain.Business, error)
}

// ExchangeStore persists question-answer exchanges and their feedback
type ExchangeStore interface {
	Create(log *domain.ChatLog) error
	UpdateFeedback(id string, feedback domain.Feedback) error
	CountUnhelpful(productID string) (int, error)
	ListRecent(productID string, limit int) ([]*domain.ChatLog, error)
}

// EscalationStore persists escalation records
type EscalationStore interface {
	Create(escalation *domain.Escalation) error
	OpenForProduct(productID string) (*domain.Escalation, error)
}

// Generator produces an answer for a grounding prompt
type Generator interface {
	Generate(ctx context.Context, prompt, model string, maxTokens int) (string, error)
}

// chatSession is the transient per-visitor state. Sessions live in memory
// only; the durable record of a conversation is the chat_logs table.
type chatSession struct {
	mu         sync.Mutex
	id         string
	product    *domain.Product
	business   *domain.Business // nil when the owning business is missing
	messages   []domain.DisplayMessage
	sending    bool
	unhelpful  int
	escalated  bool
	lastActive time.Time
}

// snapshot returns a renderable copy of the session. Caller holds cs.mu.
func (cs *chatSession) snapshot() *domain.SessionState {
	state := &domain.SessionState{
		ID:                cs.id,
		ProductID:         cs.product.ID,
		ProductName:       cs.product.Name,
		Messages:          make([]domain.DisplayMessage, len(cs.messages)),
		Sending:           cs.sending,
		EscalationVisible: cs.escalated,
	}
	copy(state.Messages, cs.messages)

	if cs.business != nil {
		state.SupportEmail = cs.business.SupportEmail
		state.SupportPhone = cs.business.SupportPhone
	}

	return state
}

// ChatService drives chat sessions: bootstrap, exchanges, feedback, and the
// escalation state machine.
type ChatService struct {
	cfg         *config.Config
	products    ProductStore
	businesses  BusinessStore
	exchanges   ExchangeStore
	escalations EscalationStore
	generator   Generator
	logger      *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*chatSession

	stopSweep chan struct{}
	sweepOnce sync.Once
}

// NewChatService creates a new chat service
func NewChatService(
	cfg *config.Config,
	products ProductStore,
	businesses BusinessStore,
	exchanges ExchangeStore,
	escalations EscalationStore,
	generator Generator,
	logger *zap.Logger,
) *ChatService {
	s := &ChatService{
		cfg:         cfg,
		products:    products,
		businesses:  businesses,
		exchanges:   exchanges,
		escalations: escalations,
		generator:   generator,
		logger:      logger,
		sessions:    make(map[string]*chatSession),
		stopSweep:   make(chan struct{}),
	}

	go s.sweepLoop()

	return s
}

// Close stops the session sweeper
func (s *ChatService) Close() {
	s.sweepOnce.Do(func() { close(s.stopSweep) })
}

func (s *ChatService) threshold() int {
	if s.cfg != nil && s.cfg.Chat.EscalationThreshold > 0 {
		return s.cfg.Chat.EscalationThreshold
	}
	return defaultEscalationThreshold
}

func (s *ChatService) maxOutputTokens() int {
	if s.cfg != nil && s.cfg.Chat.MaxOutputTokens > 0 {
		return s.cfg.Chat.MaxOutputTokens
	}
	return defaultMaxOutputTokens
}

func (s *ChatService) sessionTTL() time.Duration {
	if s.cfg != nil && s.cfg.Chat.SessionTTLMinutes > 0 {
		return time.Duration(s.cfg.Chat.SessionTTLMinutes) * time.Minute
	}
	return defaultSessionTTL
}

// BootstrapSession resolves a product into a fresh chat session. A missing
// product is fatal; a missing business only means escalation contact details
// are unavailable. The escalation-visible flag is seeded from the persisted
// unhelpful count so returning visitors see the handoff notice immediately.
func (s *ChatService) BootstrapSession(ctx context.Context, productID string) (*domain.SessionState, error) {
	product, err := s.products.Get(productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	business, err := s.businesses.Get(product.BusinessID)
	if err != nil {
		s.logger.Warn("failed to load business for session",
			zap.String("product_id", productID), zap.Error(err))
		business = nil
	}

	unhelpful, err := s.exchanges.CountUnhelpful(productID)
	if err != nil {
		s.logger.Warn("failed to count unhelpful history",
			zap.String("product_id", productID), zap.Error(err))
		unhelpful = 0
	}

	sess := &chatSession{
		id:         uuid.New().String(),
		product:    product,
		business:   business,
		unhelpful:  unhelpful,
		escalated:  unhelpful >= s.threshold(),
		lastActive: time.Now(),
	}

	// Synthetic welcome message: never persisted, never feedback-eligible.
	sess.messages = append(sess.messages, domain.DisplayMessage{
		ID:        uuid.New().String(),
		Role:      domain.RoleAssistant,
		Text:      fmt.Sprintf("Hi! I'm the assistant for %s. Ask me anything about it.", product.Name),
		CreatedAt: time.Now(),
	})

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), nil
}

// GetSession returns the current state of a session
func (s *ChatService) GetSession(sessionID string) (*domain.SessionState, error) {
	sess := s.lookup(sessionID)
	if sess == nil {
		return nil, domain.ErrNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), nil
}

// SendMessage drives one question-answer round trip. The user message is
// appended before the generator round trip begins; a generator failure
// degrades to an in-chat apology and is never surfaced as an error. The
// persisted exchange shares its ID with the assistant DisplayMessage's
// ExchangeID, which is what makes the message feedback-eligible.
func (s *ChatService) SendMessage(ctx context.Context, sessionID, text string) (*domain.SessionState, error) {
	sess := s.lookup(sessionID)
	if sess == nil {
		return nil, domain.ErrNotFound
	}

	text = strings.TrimSpace(text)

	sess.mu.Lock()
	if text == "" {
		state := sess.snapshot()
		sess.mu.Unlock()
		return state, domain.ErrEmptyMessage
	}
	if sess.sending {
		state := sess.snapshot()
		sess.mu.Unlock()
		return state, domain.ErrSessionBusy
	}
	sess.sending = true
	sess.lastActive = time.Now()
	sess.messages = append(sess.messages, domain.DisplayMessage{
		ID:        uuid.New().String(),
		Role:      domain.RoleUser,
		Text:      text,
		CreatedAt: time.Now(),
	})
	product := sess.product
	sess.mu.Unlock()

	prompt := BuildPrompt(product.Name, product.Description, text)
	answer, err := s.generator.Generate(ctx, prompt, product.Model, s.maxOutputTokens())

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.sending = false

	if err != nil || strings.TrimSpace(answer) == "" {
		if err != nil {
			s.logger.Warn("generation failed",
				zap.String("session_id", sessionID),
				zap.String("product_id", product.ID),
				zap.Error(err))
		}
		// Degraded message: no ExchangeID, so it is not feedback-eligible,
		// and no ChatLog is written.
		sess.messages = append(sess.messages, domain.DisplayMessage{
			ID:        uuid.New().String(),
			Role:      domain.RoleAssistant,
			Text:      fallbackAnswer,
			CreatedAt: time.Now(),
		})
		return sess.snapshot(), nil
	}

	log := &domain.ChatLog{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		SessionID: sessionID,
		Question:  text,
		Response:  answer,
	}

	sess.messages = append(sess.messages, domain.DisplayMessage{
		ID:         uuid.New().String(),
		Role:       domain.RoleAssistant,
		Text:       answer,
		ExchangeID: log.ID,
		CreatedAt:  time.Now(),
	})

	// Displayed-but-unlogged is the accepted failure window: the exchange is
	// already visible, the write is best effort.
	if err := s.exchanges.Create(log); err != nil {
		s.logger.Warn("failed to persist exchange",
			zap.String("session_id", sessionID),
			zap.String("product_id", product.ID),
			zap.Error(err))
	}

	return sess.snapshot(), nil
}

// SubmitFeedback records helpfulness feedback on an assistant message,
// identified exactly by the exchange ID carried on the DisplayMessage.
// Re-clicking the opposite thumb overwrites the flag; only transitions into
// unhelpful advance the escalation counter, so flipping back and forth cannot
// double-count. Crossing the threshold flips the monotonic escalation flag
// and records one Escalation, guarded by an open-escalation-per-product check.
func (s *ChatService) SubmitFeedback(ctx context.Context, sessionID, messageID string, helpful bool) (*domain.SessionState, error) {
	sess := s.lookup(sessionID)
	if sess == nil {
		return nil, domain.ErrNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastActive = time.Now()

	var msg *domain.DisplayMessage
	for i := range sess.messages {
		m := &sess.messages[i]
		if m.ID == messageID && m.Role == domain.RoleAssistant && m.ExchangeID != "" {
			msg = m
			break
		}
	}
	if msg == nil {
		return sess.snapshot(), domain.ErrNotFound
	}

	previous := msg.Feedback
	feedback := domain.FeedbackHelpful
	if !helpful {
		feedback = domain.FeedbackUnhelpful
	}
	msg.Feedback = feedback

	if err := s.exchanges.UpdateFeedback(msg.ExchangeID, feedback); err != nil {
		s.logger.Warn("failed to persist feedback",
			zap.String("session_id", sessionID),
			zap.String("exchange_id", msg.ExchangeID),
			zap.Error(err))
	}

	if !helpful && previous != domain.FeedbackUnhelpful {
		sess.unhelpful++
		if sess.unhelpful >= s.threshold() && !sess.escalated {
			sess.escalated = true
			s.recordEscalation(sess.product.ID)
		}
	}

	return sess.snapshot(), nil
}

// History returns the most recent persisted exchanges for a product
func (s *ChatService) History(ctx context.Context, productID string, limit int) ([]*domain.ChatLog, error) {
	product, err := s.products.Get(productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if limit <= 0 {
		limit = s.cfg.Chat.HistoryPageSize
	}
	if limit <= 0 {
		limit = 50
	}

	return s.exchanges.ListRecent(productID, limit)
}

// recordEscalation writes one pending escalation for the product. Escalation
// record creation is best effort; the session's visible flag is already set.
func (s *ChatService) recordEscalation(productID string) {
	open, err := s.escalations.OpenForProduct(productID)
	if err != nil {
		s.logger.Warn("failed to check open escalations",
			zap.String("product_id", productID), zap.Error(err))
	}
	if open != nil {
		return
	}

	escalation := &domain.Escalation{
		ProductID: productID,
		Reason:    domain.EscalationReasonUnhelpful,
		Status:    domain.EscalationStatusPending,
	}
	if err := s.escalations.Create(escalation); err != nil {
		s.logger.Warn("failed to create escalation",
			zap.String("product_id", productID), zap.Error(err))
		return
	}

	s.logger.Info("escalation created",
		zap.String("product_id", productID),
		zap.String("escalation_id", escalation.ID))
}

func (s *ChatService) lookup(sessionID string) *chatSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[sessionID]
}

func (s *ChatService) sweepLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(time.Now())
		case <-s.stopSweep:
			return
		}
	}
}

// sweep drops sessions idle past the TTL. An in-flight exchange counts as
// activity, so a session is never removed under an active send.
func (s *ChatService) sweep(now time.Time) {
	ttl := s.sessionTTL()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		sess.mu.Lock()
		expired := !sess.sending && now.Sub(sess.lastActive) > ttl
		sess.mu.Unlock()
		if expired {
			delete(s.sessions, id)
		}
	}
}
