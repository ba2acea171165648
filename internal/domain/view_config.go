package domain

// ColumnDef descreve uma coluna exibida no dashboard. Formato é um hint de
// renderização ("money", "int", "percent", "ratio", "text") interpretado
// apenas pelo frontend.
type ColumnDef struct {
	Key    string `json:"key" yaml:"key"`
	Label  string `json:"label" yaml:"label"`
	Format string `json:"format" yaml:"format"`
}

// ViewConfig é um layout nomeado de colunas. O núcleo de agregação trata o
// conteúdo como opaco: apenas persiste e devolve.
type ViewConfig struct {
	Name    string      `json:"name" yaml:"name"`
	Columns []ColumnDef `json:"columns" yaml:"columns"`
}
