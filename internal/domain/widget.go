package domain

import "time"

// Widget identifica o controle que originou a interação
type Widget string

const (
	WidgetButton   Widget = "button"
	WidgetGreeting Widget = "greeting"
	WidgetSquare   Widget = "square"
	WidgetCheckbox Widget = "checkbox"
	WidgetColor    Widget = "color"
)

// WidgetResult é a resposta de uma interação; Prompt indica que a mensagem
// pede uma nova entrada ao usuário em vez de exibir um resultado
type WidgetResult struct {
	Widget  Widget   `json:"widget"`
	Message string   `json:"message"`
	Prompt  bool     `json:"prompt"`
	Value   *float64 `json:"value,omitempty"`
}

type GreetingRequest struct {
	Name string `json:"name"`
}

type SquareRequest struct {
	Number float64 `json:"number"`
}

type CheckboxRequest struct {
	Checked bool `json:"checked"`
}

type ColorRequest struct {
	Option string `json:"option"`
}

type ColorOptionsResponse struct {
	Label   string   `json:"label"`
	Options []string `json:"options"`
}

// Interaction é o registro histórico de uma interação de widget
type Interaction struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Widget    Widget    `json:"widget"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	CreatedAt time.Time `json:"created_at"`
}
