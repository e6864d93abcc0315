package errs

// Sentinel errors shared by the usecase layers. Domain packages declare their own
// validation errors; usecases mark them with one of these before returning.
var (
	// Ledger errors
	ErrLotNotFound      = New("lot not found")
	ErrLotInactive      = New("lot is inactive")
	ErrCapacityExceeded = New("lot capacity exceeded")
	ErrNotLotOwner      = New("lot is owned by another operator")

	// Session errors
	ErrDuplicateActiveSession = New("driver already has an active session")
	ErrSessionNotFound        = New("session not found")
	ErrAlreadyCompleted       = New("session already completed")

	// Billing errors
	ErrInvoiceNotFound     = New("invoice not found")
	ErrInvoiceFoldConflict = New("invoice fold conflict")
	ErrBillingDeferred     = New("billing deferred to reconciliation")
	ErrTierNotFound        = New("pricing tier not found")

	// Token errors surfaced by the scan usecase
	ErrTokenRejected = New("access token rejected")
	ErrTokenReplayed = New("access token already used")

	// Store errors
	ErrStoreTimeout         = New("store operation timed out")
	ErrConcurrentUpdate     = New("concurrent update")
	ErrSerializationFailure = New("serialization failure")
	ErrMaxRetriesExceeded   = New("operation failed after max retries")

	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
