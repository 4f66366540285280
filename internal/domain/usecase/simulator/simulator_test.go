package simulator

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/entity"
	errs "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/error"
	coreport "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/core"
	mockCore "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/mocks/port/core"
	mockUsecase "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/mocks/port/usecase"
)

const testTxnID = "TXN_20250118_A3F9K2"

func testConfig() Config {
	return Config{
		PendingToProcessingDelay: coreport.Duration(10 * time.Second),
		ProcessingMinDelay:       coreport.Duration(3 * time.Second),
		ProcessingMaxDelay:       coreport.Duration(6 * time.Second),
		SuccessRate:              0.5,
	}
}

func setupSimulatorTest(config Config) (*Simulator, *mockUsecase.MockPaymentProcessor, *mockCore.MockTimeProvider, *mockCore.MockRandomSource) {
	processor := new(mockUsecase.MockPaymentProcessor)
	timeProvider := new(mockCore.MockTimeProvider)
	random := new(mockCore.MockRandomSource)
	logger := new(mockCore.MockLogger)

	timeProvider.On("Sleep", mock.Anything).Return().Maybe()
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()

	return NewSimulator(processor, config, timeProvider, random, logger), processor, timeProvider, random
}

func processingPayment() *entity.Payment {
	return &entity.Payment{TransactionID: testTxnID, Status: entity.StatusProcessing}
}

func TestScheduleCompletesPayment(t *testing.T) {
	config := testConfig()
	config.SuccessRate = 1.0
	sim, processor, timeProvider, random := setupSimulatorTest(config)

	random.On("Float64").Return(0.42)
	processor.On("Advance", mock.Anything, testTxnID, entity.StatusProcessing, "").
		Return(processingPayment(), nil)
	processor.On("Complete", mock.Anything, testTxnID).
		Return(&entity.Payment{TransactionID: testTxnID, Status: entity.StatusCompleted}, nil)

	sim.Schedule(testTxnID)
	sim.Shutdown()

	processor.AssertCalled(t, "Advance", mock.Anything, testTxnID, entity.StatusProcessing, "")
	processor.AssertCalled(t, "Complete", mock.Anything, testTxnID)
	processor.AssertNotCalled(t, "Fail", mock.Anything, mock.Anything, mock.Anything)
	timeProvider.AssertCalled(t, "Sleep", config.PendingToProcessingDelay)
}

func TestScheduleFailsPayment(t *testing.T) {
	config := testConfig()
	config.SuccessRate = 0.0
	sim, processor, _, random := setupSimulatorTest(config)

	random.On("Float64").Return(0.42)
	random.On("IntN", len(failureMessages)).Return(2)
	processor.On("Advance", mock.Anything, testTxnID, entity.StatusProcessing, "").
		Return(processingPayment(), nil)
	processor.On("Fail", mock.Anything, testTxnID, "Transaction timeout - please retry").
		Return(&entity.Payment{TransactionID: testTxnID, Status: entity.StatusFailed}, nil)

	sim.Schedule(testTxnID)
	sim.Shutdown()

	processor.AssertCalled(t, "Fail", mock.Anything, testTxnID, "Transaction timeout - please retry")
	processor.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestScheduleDrawsProcessingDelayBetweenBounds(t *testing.T) {
	config := testConfig()
	config.SuccessRate = 1.0
	sim, processor, timeProvider, random := setupSimulatorTest(config)

	// 0.5 between 3s and 6s lands on 4.5s
	random.On("Float64").Return(0.5)
	processor.On("Advance", mock.Anything, testTxnID, entity.StatusProcessing, "").
		Return(processingPayment(), nil)
	processor.On("Complete", mock.Anything, testTxnID).
		Return(&entity.Payment{TransactionID: testTxnID}, nil)

	sim.Schedule(testTxnID)
	sim.Shutdown()

	timeProvider.AssertCalled(t, "Sleep", coreport.Duration(4500*time.Millisecond))
}

func TestScheduleParksPaymentOnUnexpectedError(t *testing.T) {
	sim, processor, _, random := setupSimulatorTest(testConfig())

	random.On("Float64").Return(0.42).Maybe()
	processor.On("Advance", mock.Anything, testTxnID, entity.StatusProcessing, "").
		Return(nil, errors.New("connection reset"))
	processor.On("Fail", mock.Anything, testTxnID, "system error: connection reset").
		Return(&entity.Payment{TransactionID: testTxnID, Status: entity.StatusFailed}, nil)

	sim.Schedule(testTxnID)
	sim.Shutdown()

	processor.AssertCalled(t, "Fail", mock.Anything, testTxnID, "system error: connection reset")
	processor.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestScheduleLeavesTerminalPaymentAlone(t *testing.T) {
	// A payment that was already failed by the time the unit woke up must
	// not be force-failed again; the park attempt hits the same transition
	// guard and the unit gives up quietly.
	sim, processor, _, random := setupSimulatorTest(testConfig())

	random.On("Float64").Return(0.42).Maybe()
	transitionErr := errs.NewInvalidTransitionError(testTxnID, "failed", "processing")
	processor.On("Advance", mock.Anything, testTxnID, entity.StatusProcessing, "").
		Return(nil, transitionErr)
	processor.On("Fail", mock.Anything, testTxnID, mock.AnythingOfType("string")).
		Return(nil, errs.NewInvalidTransitionError(testTxnID, "failed", "failed"))

	sim.Schedule(testTxnID)
	sim.Shutdown()

	processor.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestIndependentProcessingUnits(t *testing.T) {
	config := testConfig()
	config.SuccessRate = 1.0
	sim, processor, _, random := setupSimulatorTest(config)

	random.On("Float64").Return(0.1)
	for _, id := range []string{"TXN_20250118_AAAAAA", "TXN_20250118_BBBBBB", "TXN_20250118_CCCCCC"} {
		processor.On("Advance", mock.Anything, id, entity.StatusProcessing, "").
			Return(&entity.Payment{TransactionID: id, Status: entity.StatusProcessing}, nil)
		processor.On("Complete", mock.Anything, id).
			Return(&entity.Payment{TransactionID: id, Status: entity.StatusCompleted}, nil)
		sim.Schedule(id)
	}
	sim.Shutdown()

	for _, id := range []string{"TXN_20250118_AAAAAA", "TXN_20250118_BBBBBB", "TXN_20250118_CCCCCC"} {
		processor.AssertCalled(t, "Complete", mock.Anything, id)
	}
}

func TestScheduleRecoversFromPanic(t *testing.T) {
	sim, processor, _, random := setupSimulatorTest(testConfig())

	random.On("Float64").Return(0.1).Maybe()
	processor.On("Advance", mock.Anything, testTxnID, entity.StatusProcessing, "").
		Run(func(mock.Arguments) { panic("boom") }).
		Return(nil, nil)

	sim.Schedule(testTxnID)

	assert.NotPanics(t, func() { sim.Shutdown() })
}
