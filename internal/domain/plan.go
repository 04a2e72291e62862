package domain

// BuildNightPlan выводит упорядоченный план ночи для конкретного
// шаблона доски: мастер-таблица MasterNightOrder фильтруется до шагов,
// чья роль присутствует в шаблоне, с сохранением мастер-порядка.
// Детерминированно и стабильно: тот же состав - тот же план, без дублей.
//
// Особый случай - wolfKill: шаг принадлежит совещанию, а не одной роли,
// поэтому он попадает в план, если в шаблоне есть хотя бы один участник
// волчьего стола.
func BuildNightPlan(template []RoleID) []StepID {
	present := make(map[RoleID]bool, len(template))
	anyWolfMeeting := false
	for _, role := range template {
		present[role] = true
		if IsWolfMeetingParticipant(role) {
			anyWolfMeeting = true
		}
	}

	plan := make([]StepID, 0, len(MasterNightOrder))
	for _, step := range MasterNightOrder {
		if step == StepWolfKill {
			if anyWolfMeeting {
				plan = append(plan, step)
			}
			continue
		}
		schema, ok := StepSchema(step)
		if ok && present[schema.Role] {
			plan = append(plan, step)
		}
	}
	return plan
}
