package widgets

import (
	"context"
	"math"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dashboard-demo-api/infrastructure/repository/mocks"
	"github.com/vfg2006/dashboard-demo-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockInteractionRepository) {
	repo := mocks.NewMockInteractionRepository(ctrl)
	svc := NewService(repo).(*Service)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC) }
	return svc, repo
}

// expectRecord espera a gravação de uma interação com o widget, entrada e saída informados
func expectRecord(t *testing.T, repo *mocks.MockInteractionRepository, widget domain.Widget, input, output string) {
	repo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, i *domain.Interaction) error {
			assert.Equal(t, "s1", i.SessionID)
			assert.Equal(t, widget, i.Widget)
			assert.Equal(t, input, i.Input)
			assert.Equal(t, output, i.Output)
			assert.Len(t, i.ID, 12)
			return nil
		})
}

func TestService_Click(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestService(ctrl)
	expectRecord(t, repo, domain.WidgetButton, "", "버튼이 클릭되었습니다!")

	result := svc.Click(context.Background(), "s1")
	assert.Equal(t, domain.WidgetButton, result.Widget)
	assert.Equal(t, "버튼이 클릭되었습니다!", result.Message)
	assert.False(t, result.Prompt)
}

func TestService_Greet(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantMsg    string
		wantPrompt bool
	}{
		{"nome simples", "지수", "안녕하세요, 지수님!", false},
		{"nome com espaços nas pontas", "  Ana  ", "안녕하세요,   Ana  님!", false},
		{"nome vazio", "", "이름을 입력해주세요.", true},
		{"somente espaços", "   ", "안녕하세요,    님!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, repo := newTestService(ctrl)
			expectRecord(t, repo, domain.WidgetGreeting, tt.input, tt.wantMsg)

			result := svc.Greet(context.Background(), "s1", tt.input)
			assert.Equal(t, tt.wantMsg, result.Message)
			assert.Equal(t, tt.wantPrompt, result.Prompt)
		})
	}
}

func TestGreeting_EmptyInputError(t *testing.T) {
	_, err := greeting("")

	var emptyErr *domain.EmptyInputError
	require.True(t, errors.As(err, &emptyErr))
	assert.Equal(t, "name", emptyErr.Field)
	assert.Equal(t, NamePrompt, emptyErr.Prompt)
}

func TestService_Square(t *testing.T) {
	tests := []struct {
		name    string
		number  float64
		wantMsg string
		want    float64
	}{
		{"inteiro", 5, "5 × 5 = 25", 25},
		{"zero", 0, "0 × 0 = 0", 0},
		{"negativo", -3, "-3 × -3 = 9", 9},
		{"decimal", 2.5, "2.5 × 2.5 = 6.25", 6.25},
		{"grande", 1e10, "10000000000 × 10000000000 = 1e+20", 1e20},
		{"pequeno", 0.001, "0.001 × 0.001 = 1e-06", 1e-06},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, repo := newTestService(ctrl)
			repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

			result := svc.Square(context.Background(), "s1", tt.number)
			assert.Equal(t, tt.wantMsg, result.Message)
			require.NotNil(t, result.Value)
			assert.Equal(t, tt.want, *result.Value)
		})
	}
}

func TestService_SquareOverflow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestService(ctrl)
	expectRecord(t, repo, domain.WidgetSquare, "1e+200", "1e+200 × 1e+200 = inf")

	result := svc.Square(context.Background(), "s1", 1e200)
	assert.Equal(t, "1e+200 × 1e+200 = inf", result.Message)
	assert.Nil(t, result.Value)

	// O resultado precisa continuar serializável
	_, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(result)
	assert.NoError(t, err)
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{5, "5"},
		{-3.5, "-3.5"},
		{0, "0"},
		{1e16, "1e+16"},
		{123456789, "123456789"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatNumber(tt.in))
	}
}

func TestService_ToggleInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestService(ctrl)
	expectRecord(t, repo, domain.WidgetCheckbox, "true", ExtraInfoMessage)
	expectRecord(t, repo, domain.WidgetCheckbox, "false", "")

	assert.Equal(t, "여기에 추가 정보가 표시됩니다!", svc.ToggleInfo(context.Background(), "s1", true).Message)
	assert.Empty(t, svc.ToggleInfo(context.Background(), "s1", false).Message)
}

func TestService_Color(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestService(ctrl)

	opts := svc.ColorOptions()
	assert.Equal(t, "좋아하는 색상을 선택하세요:", opts.Label)
	assert.Equal(t, []string{"빨강", "파랑", "초록", "노랑"}, opts.Options)

	// Alterar a cópia não afeta as opções do serviço
	opts.Options[0] = "roxo"
	assert.Equal(t, "빨강", svc.ColorOptions().Options[0])

	for _, option := range ColorOptions {
		expectRecord(t, repo, domain.WidgetColor, option, "당신이 선택한 색상은 "+option+"입니다.")
		result, err := svc.ChooseColor(context.Background(), "s1", option)
		require.NoError(t, err)
		assert.Equal(t, "당신이 선택한 색상은 "+option+"입니다.", result.Message)
	}

	_, err := svc.ChooseColor(context.Background(), "s1", "보라")
	assert.True(t, errors.Is(err, domain.ErrInvalidOption))
}

func TestService_RecordFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestService(ctrl)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("banco indisponível"))

	result := svc.Click(context.Background(), "s1")
	assert.Equal(t, ClickedMessage, result.Message)
}

func TestService_NoSessionSkipsRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestService(ctrl)

	// Sem sessão nada é gravado; o mock falharia com uma chamada inesperada
	result := svc.Click(context.Background(), "")
	assert.Equal(t, ClickedMessage, result.Message)
}

func TestService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestService(ctrl)
	expected := []*domain.Interaction{{ID: "a", SessionID: "s1", Widget: domain.WidgetButton}}

	repo.EXPECT().ListBySession(gomock.Any(), "s1", 10).Return(expected, nil)
	items, err := svc.History(context.Background(), "s1", 10)
	require.NoError(t, err)
	assert.Equal(t, expected, items)

	repo.EXPECT().ListBySession(gomock.Any(), "s1", 10).Return(nil, errors.New("falha"))
	_, err = svc.History(context.Background(), "s1", 10)
	assert.Error(t, err)
}
