package simulator

import (
	"context"
	"fmt"
	"sync"

	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/entity"
	coreport "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/core"
	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/usecase"
)

// failureMessages is the fixed catalog of gateway rejection reasons a
// failed payment is stamped with, drawn uniformly at random.
var failureMessages = []string{
	"Insufficient funds at payment gateway",
	"Creditor account temporarily unavailable",
	"Transaction timeout - please retry",
	"Anti-fraud system flagged this transaction",
	"Network error during processing",
}

// Config controls the simulated gateway timing and outcome distribution
type Config struct {
	// PendingToProcessingDelay is how long a payment stays pending before
	// the gateway picks it up
	PendingToProcessingDelay coreport.Duration

	// ProcessingMinDelay and ProcessingMaxDelay bound the uniformly drawn
	// processing time before the terminal status is decided
	ProcessingMinDelay coreport.Duration
	ProcessingMaxDelay coreport.Duration

	// SuccessRate is the probability in [0, 1] that processing completes
	SuccessRate float64
}

// Simulator stands in for an external payment gateway: each scheduled
// payment gets its own goroutine that walks it pending -> processing ->
// completed|failed on a randomized timetable. It drives payments only
// through the PaymentProcessor interface, the same surface a real gateway
// callback handler would use.
type Simulator struct {
	processor    usecase.PaymentProcessor
	config       Config
	timeProvider coreport.TimeProvider
	random       coreport.RandomSource
	logger       coreport.Logger

	wg sync.WaitGroup
}

// NewSimulator creates a new processing simulator
func NewSimulator(
	processor usecase.PaymentProcessor,
	config Config,
	timeProvider coreport.TimeProvider,
	random coreport.RandomSource,
	logger coreport.Logger,
) *Simulator {
	return &Simulator{
		processor:    processor,
		config:       config,
		timeProvider: timeProvider,
		random:       random,
		logger:       logger,
	}
}

// Schedule starts one background processing unit for the payment and
// returns immediately. Processing units are independent; a slow or stuck
// payment never delays another.
func (s *Simulator) Schedule(transactionID string) {
	s.wg.Add(1)
	go s.process(transactionID)

	s.logger.Debug("Payment scheduled for background processing", map[string]any{
		"transaction_id": transactionID,
	})
}

// Shutdown waits for all in-flight processing units to finish
func (s *Simulator) Shutdown() {
	s.logger.Info("Waiting for in-flight payment processing to finish", nil)
	s.wg.Wait()
}

// process walks a single payment through its lifecycle. It deliberately
// runs on a fresh background context: the creator's request finishes long
// before processing does.
func (s *Simulator) process(transactionID string) {
	defer s.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Panic in payment processing unit", map[string]any{
				"transaction_id": transactionID,
				"panic":          fmt.Sprintf("%v", r),
			})
		}
	}()

	ctx := context.Background()

	s.timeProvider.Sleep(s.config.PendingToProcessingDelay)

	if _, err := s.processor.Advance(ctx, transactionID, entity.StatusProcessing, ""); err != nil {
		s.handleProcessingError(ctx, transactionID, err)
		return
	}

	s.timeProvider.Sleep(s.processingDelay())

	if s.random.Float64() < s.config.SuccessRate {
		if _, err := s.processor.Complete(ctx, transactionID); err != nil {
			s.handleProcessingError(ctx, transactionID, err)
		}
		return
	}

	reason := failureMessages[s.random.IntN(len(failureMessages))]
	if _, err := s.processor.Fail(ctx, transactionID, reason); err != nil {
		s.logger.Error("Failed to mark payment as failed", map[string]any{
			"transaction_id": transactionID,
			"reason":         reason,
			"error":          err.Error(),
		})
	}
}

// processingDelay draws a uniform delay from [min, max]
func (s *Simulator) processingDelay() coreport.Duration {
	minDelay := s.config.ProcessingMinDelay
	maxDelay := s.config.ProcessingMaxDelay
	if maxDelay <= minDelay {
		return minDelay
	}
	return minDelay + coreport.Duration(s.random.Float64()*float64(maxDelay-minDelay))
}

// handleProcessingError makes one best-effort attempt to park the payment
// in failed so it doesn't sit in a non-terminal status forever. If even
// that fails the payment is left as-is and the error is logged.
func (s *Simulator) handleProcessingError(ctx context.Context, transactionID string, cause error) {
	s.logger.Error("Payment processing unit hit an error", map[string]any{
		"transaction_id": transactionID,
		"error":          cause.Error(),
	})

	if _, err := s.processor.Fail(ctx, transactionID, fmt.Sprintf("system error: %s", cause.Error())); err != nil {
		s.logger.Error("Could not park payment in failed status", map[string]any{
			"transaction_id": transactionID,
			"error":          err.Error(),
		})
	}
}
