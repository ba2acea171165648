package metadomain

type AdAccount struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Currency  string `json:"currency"`
}

// AccountMetadata são os metadados consultados no início da montagem do
// relatório; a falha dessa busca não aborta o relatório.
type AccountMetadata struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

// EntityBudget é o orçamento cru de uma campanha ou conjunto de anúncios,
// em unidades menores da moeda (centavos).
type EntityBudget struct {
	ID             string `json:"id"`
	DailyBudget    string `json:"daily_budget"`
	LifetimeBudget string `json:"lifetime_budget"`
}
