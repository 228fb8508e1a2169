package apierrors

// Message ids, resolved through the translator bundle.
const (
	MsgValidationFailed      = "validationFailed"
	MsgInvalidProcedureInput = "invalidProcedureInput"
	MsgResourceNotFound      = "resourceNotFound"
	MsgProcedureNotFound     = "procedureNotFound"
	MsgMethodNotSupported    = "methodNotSupported"
	MsgUnknownReference      = "unknownReference"
	MsgResourceConflict      = "resourceConflict"
	MsgStoreFailure          = "storeFailure"
)

// Error kinds exposed to clients.
const (
	KindValidation         = "VALIDATION_ERROR"
	KindNotFound           = "NOT_FOUND"
	KindReference          = "REFERENCE_ERROR"
	KindConflict           = "CONFLICT"
	KindStore              = "STORE_ERROR"
	KindMethodNotSupported = "METHOD_NOT_SUPPORTED"
)
