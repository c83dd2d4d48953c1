package booking

import (
	"context"
	"time"

	"arogya/models"
	"arogya/services/availability"
	"arogya/services/clinicapi"
	"arogya/services/clinicstatus"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmissionState is the phase a submission attempt is in. AwaitingRedirect
// and Failed are terminal: once the browser is handed to the payment page,
// nothing of the in-memory attempt survives; the receipt path re-enters
// through Confirm.
type SubmissionState string

const (
	StateIdle                 SubmissionState = "idle"
	StateValidating           SubmissionState = "validating"
	StateCheckingAvailability SubmissionState = "checking_availability"
	StateSubmittingPayment    SubmissionState = "submitting_payment"
	StateAwaitingRedirect     SubmissionState = "awaiting_redirect_outcome"
	StateFailed               SubmissionState = "failed"
)

// Outcome is the terminal result of one submission attempt, consumed exactly
// once to drive the receipt-vs-error view. Phase records how far the attempt
// got before it ended.
type Outcome struct {
	State       SubmissionState `json:"state"`
	Phase       SubmissionState `json:"phase,omitempty"`
	RedirectURL string          `json:"redirectUrl,omitempty"`
	Failure     *BookingError   `json:"-"`
}

// OrderCallTimeout bounds the order-creation call so a hung backend surfaces
// as an explicit failure instead of an indefinite loading state.
const OrderCallTimeout = 30 * time.Second

const (
	msgGeoRestricted    = "This service is only available in India."
	msgGenericFailure   = "Something went wrong while booking. Please try again."
	msgAvailabilityDown = "Could not confirm slot availability. Please try again."
	msgNoSlots          = "No slots remaining for the selected date."
	msgClinicClosed     = "The clinic is currently closed for bookings."
)

// DefaultBookingService is the production booking orchestrator.
type DefaultBookingService struct {
	Availability availability.Service
	Gate         *clinicstatus.Gate
	Backend      clinicapi.Client
	Receipts     ReceiptStore
	Validator    Validator
	Fee          int
	Now          func() time.Time
	Logger       *zap.Logger
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Submit runs one attempt: validate → check clinic status → check
// availability → create order. Steps run strictly sequentially; any failure
// short-circuits before the next network call and reports the phase it
// happened in.
func (s *DefaultBookingService) Submit(ctx context.Context, req models.BookingRequest) Outcome {
	now := s.now()

	phase := StateIdle
	failed := func(err *BookingError) Outcome {
		return Outcome{State: StateFailed, Phase: phase, Failure: err}
	}

	// Validating: field and date checks, no network calls.
	phase = StateValidating
	if err := ValidateRequest(req); err != nil {
		return failed(err)
	}
	if err := s.Validator.ValidateDate(req.Date, now); err != nil {
		return failed(err)
	}

	// CheckingAvailability: closure wins over remaining slots.
	phase = StateCheckingAvailability
	if s.Gate.IsClosedNow(now) {
		msg := msgClinicClosed
		if status := s.Gate.Snapshot(); status != nil && status.DisplayMessage != "" {
			msg = status.DisplayMessage
		}
		return failed(NewBookingError(CodeClinicClosed, msg))
	}

	remaining, err := s.Availability.Remaining(ctx, req.Date, false)
	if err != nil {
		return failed(NewBookingError(CodeNetworkError, msgAvailabilityDown))
	}
	if remaining <= 0 {
		return failed(NewBookingError(CodeNoSlots, msgNoSlots))
	}

	// SubmittingPayment: the single order-creation request for this attempt.
	phase = StateSubmittingPayment
	orderCtx, cancel := context.WithTimeout(ctx, OrderCallTimeout)
	defer cancel()

	order, err := s.Backend.CreateOrder(orderCtx, clinicapi.OrderRequest{
		Date:        req.Date,
		PatientName: req.PatientName,
		Gender:      req.Gender,
		Age:         req.Age,
		Phone:       req.Phone,
		Amount:      s.Fee,
	})
	if err != nil {
		return failed(s.mapOrderError(err))
	}

	s.Logger.Info("booking: order created, handing off to payment",
		zap.String("date", req.Date))
	return Outcome{State: StateAwaitingRedirect, RedirectURL: order.RedirectURL}
}

func (s *DefaultBookingService) mapOrderError(err error) *BookingError {
	apiErr, ok := clinicapi.AsAPIError(err)
	if !ok {
		s.Logger.Error("booking: order creation failed", zap.Error(err))
		return NewBookingError(CodeNetworkError, msgGenericFailure)
	}

	switch apiErr.Code {
	case clinicapi.CodeGeoRestricted:
		return NewBookingError(CodeGeoRestricted, msgGeoRestricted)
	case clinicapi.CodeClinicClosed:
		msg := apiErr.Message
		if msg == "" {
			msg = msgClinicClosed
		}
		return NewBookingError(CodeClinicClosed, msg)
	default:
		msg := apiErr.Message
		if msg == "" {
			msg = msgGenericFailure
		}
		return NewBookingError(CodeBackendError, msg)
	}
}

// Confirm is the re-entry point after the payment redirect. It stores the
// receipt and drops the stale pre-booking slot count for the date.
func (s *DefaultBookingService) Confirm(ctx context.Context, conf models.PaymentConfirmation) (*models.Receipt, error) {
	receipt := &models.Receipt{
		ReceiptID:   uuid.New().String(),
		OrderID:     conf.OrderID,
		PaymentID:   conf.PaymentID,
		SlotNumber:  conf.SlotNumber,
		Date:        conf.Date,
		PatientName: conf.PatientName,
		Amount:      conf.Amount,
		IssuedAt:    s.now(),
	}
	if err := s.Receipts.Save(ctx, receipt); err != nil {
		return nil, err
	}

	s.Availability.Invalidate(conf.Date)
	s.Logger.Info("booking: confirmed",
		zap.String("orderId", conf.OrderID),
		zap.String("date", conf.Date),
		zap.Int("slot", conf.SlotNumber))
	return receipt, nil
}

func (s *DefaultBookingService) ReceiptByOrderID(ctx context.Context, orderID string) (*models.Receipt, error) {
	return s.Receipts.Get(ctx, orderID)
}

func (s *DefaultBookingService) Search(ctx context.Context, phone, date string) (*clinicapi.SearchResult, error) {
	return s.Backend.SearchBookings(ctx, phone, date)
}
