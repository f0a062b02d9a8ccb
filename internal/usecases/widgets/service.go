// Package widgets contém a lógica de eco dos widgets de entrada da demonstração
package widgets

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/dashboard-demo-api/infrastructure/repository"
	"github.com/vfg2006/dashboard-demo-api/internal/domain"
	"github.com/vfg2006/dashboard-demo-api/pkg/log"
	"github.com/vfg2006/dashboard-demo-api/pkg/utils"
)

// Textos exibidos pelos widgets
const (
	ClickedMessage    = "버튼이 클릭되었습니다!"
	NamePrompt        = "이름을 입력해주세요."
	GreetingFormat    = "안녕하세요, %s님!"
	ExtraInfoMessage  = "여기에 추가 정보가 표시됩니다!"
	ColorLabel        = "좋아하는 색상을 선택하세요:"
	ColorChosenFormat = "당신이 선택한 색상은 %s입니다."
)

// ColorOptions são as opções do seletor de cor, na ordem exibida
var ColorOptions = []string{"빨강", "파랑", "초록", "노랑"}

type WidgetService interface {
	Click(ctx context.Context, sessionID string) *domain.WidgetResult
	Greet(ctx context.Context, sessionID string, name string) *domain.WidgetResult
	Square(ctx context.Context, sessionID string, number float64) *domain.WidgetResult
	ToggleInfo(ctx context.Context, sessionID string, checked bool) *domain.WidgetResult
	ColorOptions() *domain.ColorOptionsResponse
	ChooseColor(ctx context.Context, sessionID string, option string) (*domain.WidgetResult, error)
	History(ctx context.Context, sessionID string, limit int) ([]*domain.Interaction, error)
}

type Service struct {
	interactionRepo repository.InteractionRepository
	now             func() time.Time
}

func NewService(interactionRepo repository.InteractionRepository) WidgetService {
	return &Service{
		interactionRepo: interactionRepo,
		now:             time.Now,
	}
}

func (s *Service) Click(ctx context.Context, sessionID string) *domain.WidgetResult {
	result := &domain.WidgetResult{Widget: domain.WidgetButton, Message: ClickedMessage}
	s.record(ctx, sessionID, "", result)
	return result
}

// Greet cumprimenta pelo nome como digitado; nome vazio vira o pedido de preenchimento
func (s *Service) Greet(ctx context.Context, sessionID string, name string) *domain.WidgetResult {
	result := &domain.WidgetResult{Widget: domain.WidgetGreeting}

	message, err := greeting(name)
	var emptyErr *domain.EmptyInputError
	if errors.As(err, &emptyErr) {
		result.Message = emptyErr.Prompt
		result.Prompt = true
	} else {
		result.Message = message
	}

	s.record(ctx, sessionID, name, result)
	return result
}

// greeting só pede o nome quando nada foi digitado; espaços contam como nome
func greeting(name string) (string, error) {
	if name == "" {
		return "", &domain.EmptyInputError{Field: "name", Prompt: NamePrompt}
	}
	return fmt.Sprintf(GreetingFormat, name), nil
}

// Square calcula o quadrado do número informado
func (s *Service) Square(ctx context.Context, sessionID string, number float64) *domain.WidgetResult {
	squared := number * number
	n := formatNumber(number)

	result := &domain.WidgetResult{
		Widget:  domain.WidgetSquare,
		Message: fmt.Sprintf("%s × %s = %s", n, n, formatNumber(squared)),
	}
	// Value fica ausente quando o quadrado estoura o float64
	if !math.IsInf(squared, 0) && !math.IsNaN(squared) {
		result.Value = &squared
	}

	s.record(ctx, sessionID, n, result)
	return result
}

func (s *Service) ToggleInfo(ctx context.Context, sessionID string, checked bool) *domain.WidgetResult {
	result := &domain.WidgetResult{Widget: domain.WidgetCheckbox}
	if checked {
		result.Message = ExtraInfoMessage
	}

	s.record(ctx, sessionID, strconv.FormatBool(checked), result)
	return result
}

func (s *Service) ColorOptions() *domain.ColorOptionsResponse {
	return &domain.ColorOptionsResponse{
		Label:   ColorLabel,
		Options: append([]string(nil), ColorOptions...),
	}
}

func (s *Service) ChooseColor(ctx context.Context, sessionID string, option string) (*domain.WidgetResult, error) {
	option = strings.TrimSpace(option)

	valid := false
	for _, o := range ColorOptions {
		if o == option {
			valid = true
			break
		}
	}
	if !valid {
		return nil, errors.Wrapf(domain.ErrInvalidOption, "widgets: cor %q", option)
	}

	result := &domain.WidgetResult{
		Widget:  domain.WidgetColor,
		Message: fmt.Sprintf(ColorChosenFormat, option),
	}

	s.record(ctx, sessionID, option, result)
	return result, nil
}

func (s *Service) History(ctx context.Context, sessionID string, limit int) ([]*domain.Interaction, error) {
	interactions, err := s.interactionRepo.ListBySession(ctx, sessionID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "widgets: erro ao buscar histórico")
	}
	return interactions, nil
}

// record grava a interação; falhas não interrompem a resposta ao usuário
func (s *Service) record(ctx context.Context, sessionID, input string, result *domain.WidgetResult) {
	if s.interactionRepo == nil || sessionID == "" {
		return
	}

	id, err := utils.GenerateID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("widgets: erro ao gerar ID da interação")
		return
	}

	interaction := &domain.Interaction{
		ID:        id,
		SessionID: sessionID,
		Widget:    result.Widget,
		Input:     input,
		Output:    result.Message,
		CreatedAt: s.now(),
	}

	if err := s.interactionRepo.Save(ctx, interaction); err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"session_id": sessionID,
			"widget":     result.Widget,
		}).Warn("widgets: erro ao registrar interação")
	}
}

// formatNumber usa a menor representação: 5 -> "5", 2.5 -> "2.5", 1e200 -> "1e+200", +Inf -> "inf"
func formatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}

	abs := math.Abs(v)
	if abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
