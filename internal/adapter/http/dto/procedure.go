package dto

// ProcedureItem describes one registered procedure.
type ProcedureItem struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}
