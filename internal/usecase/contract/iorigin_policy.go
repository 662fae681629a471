package usecasecontract

// IOriginPolicy decides whether a cross-origin caller may receive a response.
type IOriginPolicy interface {
	// Allows is the pure decision, used for CORS response headers.
	Allows(origin string) bool
	// Admit returns errs.ForbiddenOrigin for a denied origin and logs it.
	Admit(origin string) error
}
