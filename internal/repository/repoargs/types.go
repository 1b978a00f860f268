package repoargs

type RepositoryName string

const (
	OrganizationRepoName RepositoryName = "organization"
	PaymentRepoName      RepositoryName = "payment"
	BalanceLogRepoName   RepositoryName = "balance_log"
)
