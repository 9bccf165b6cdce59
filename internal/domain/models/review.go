package models

// PRIdentity identifica de forma única una Pull Request en el proveedor VCS.
// Se construye una sola vez al inicio del proceso y no se modifica después.
type PRIdentity struct {
	Owner  string
	Repo   string
	Number int
}

// AnalysisOutcome clasifica el resultado del análisis de IA, permitiendo
// distinguir una reseña real de un texto de respaldo.
type AnalysisOutcome string

const (
	// OutcomeReview indica que el modelo generó una reseña real.
	OutcomeReview AnalysisOutcome = "review"
	// OutcomeMissingCredential indica que no había credencial del modelo configurada.
	OutcomeMissingCredential AnalysisOutcome = "missing_credential"
	// OutcomeModelError indica que la invocación del modelo falló.
	OutcomeModelError AnalysisOutcome = "model_error"
)

// ReviewAnalysis es el resultado tipado del analizador de cambios.
type ReviewAnalysis struct {
	Text    string
	Outcome AnalysisOutcome
}

// IsReview retorna true si el texto proviene del modelo y no es un respaldo.
func (a ReviewAnalysis) IsReview() bool {
	return a.Outcome == OutcomeReview
}

// ReviewResult es el resultado final del pipeline de reseña.
type ReviewResult struct {
	Analysis    ReviewAnalysis
	CommentBody string
	CommentURL  string
}

const reviewCommentHeader = "### 🤖 Aegis AI Review"

// FormatReviewComment arma el cuerpo del comentario: encabezado fijo más el
// texto del análisis.
func FormatReviewComment(analysisText string) string {
	return reviewCommentHeader + "\n\n" + analysisText
}
