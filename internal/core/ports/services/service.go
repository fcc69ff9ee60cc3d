package services

// ServicesContainer bundles the service facades handed to the HTTP layer.
type ServicesContainer struct {
	Ledger  LedgerSvcFacade
	Payoff  PayoffSvcFacade
	Profile ProfileSvcFacade
	Token   TokenSvcFacade
}
