package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/olveryu/WerewolfGameJudge-sub011/internal/domain"
)

func intp(v int) *int    { return &v }
func boolp(v bool) *bool { return &v }

func TestIsSkipInput(t *testing.T) {
	tests := []struct {
		name string
		kind domain.SchemaKind
		in   domain.ActionInput
		want bool
	}{
		{"confirm nil", domain.SchemaConfirm, domain.ActionInput{}, true},
		{"confirm false", domain.SchemaConfirm, domain.ActionInput{Confirmed: boolp(false)}, true},
		{"confirm true", domain.SchemaConfirm, domain.ActionInput{Confirmed: boolp(true)}, false},
		{"chooseSeat nil", domain.SchemaChooseSeat, domain.ActionInput{}, true},
		{"chooseSeat set", domain.SchemaChooseSeat, domain.ActionInput{Target: intp(3)}, false},
		{"wolfVote nil", domain.SchemaWolfVote, domain.ActionInput{}, true},
		{"wolfVote set", domain.SchemaWolfVote, domain.ActionInput{Target: intp(3)}, false},
		{"multi empty", domain.SchemaMultiChooseSeat, domain.ActionInput{}, true},
		{"multi set", domain.SchemaMultiChooseSeat, domain.ActionInput{Targets: []int{1}}, false},
		{"swap empty", domain.SchemaSwap, domain.ActionInput{}, true},
		{"swap set", domain.SchemaSwap, domain.ActionInput{Targets: []int{1, 2}}, false},
		{"compound empty", domain.SchemaCompound, domain.ActionInput{}, true},
		{"compound save", domain.SchemaCompound, domain.ActionInput{Save: intp(1)}, false},
		{"compound poison", domain.SchemaCompound, domain.ActionInput{Poison: intp(1)}, false},
		{"groupConfirm never skip", domain.SchemaGroupConfirm, domain.ActionInput{}, false},
		// Неизвестная форма - fail closed, не пропуск
		{"unknown kind", domain.SchemaKind(99), domain.ActionInput{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSkipInput(tt.kind, tt.in))
		})
	}
}

func chooseSchema() domain.ActionSchema {
	s, _ := domain.StepSchema(domain.StepSeerCheck)
	return s
}

func confirmSchema() domain.ActionSchema {
	s, _ := domain.StepSchema(domain.StepHunterConfirm)
	return s
}

func TestNightmareGuard_ChooseSeat(t *testing.T) {
	schema := chooseSchema()

	// Незаблокированный: и подача, и пропуск легальны
	assert.Empty(t, NightmareGuard(schema, domain.NoSeat, 0, domain.ActionInput{Target: intp(1)}))
	assert.Empty(t, NightmareGuard(schema, domain.NoSeat, 0, domain.ActionInput{}))

	// Заблокированный: только пропуск
	assert.Empty(t, NightmareGuard(schema, 0, 0, domain.ActionInput{}))
	assert.Equal(t, domain.ReasonBlockedByNightmare,
		NightmareGuard(schema, 0, 0, domain.ActionInput{Target: intp(1)}))

	// Блок чужого места актора не касается
	assert.Empty(t, NightmareGuard(schema, 2, 0, domain.ActionInput{Target: intp(1)}))
}

func TestNightmareGuard_Confirm(t *testing.T) {
	schema := confirmSchema()

	// Незаблокированный НЕ может пропустить подтверждение
	assert.Equal(t, domain.ReasonCannotSkip,
		NightmareGuard(schema, domain.NoSeat, 0, domain.ActionInput{}))
	assert.Equal(t, domain.ReasonCannotSkip,
		NightmareGuard(schema, domain.NoSeat, 0, domain.ActionInput{Confirmed: boolp(false)}))
	assert.Empty(t, NightmareGuard(schema, domain.NoSeat, 0, domain.ActionInput{Confirmed: boolp(true)}))

	// Заблокированный может ТОЛЬКО пропустить
	assert.Empty(t, NightmareGuard(schema, 0, 0, domain.ActionInput{}))
	assert.Equal(t, domain.ReasonBlockedByNightmare,
		NightmareGuard(schema, 0, 0, domain.ActionInput{Confirmed: boolp(true)}))
}
