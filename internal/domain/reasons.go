package domain

// Коды отказов - стабильные идентификаторы, не свободный текст.
// UI и тесты матчатся на них, поэтому менять существующий код нельзя.
const (
	ReasonHostOnly           = "host_only"
	ReasonNoState            = "no_state"
	ReasonInvalidStatus      = "invalid_status"
	ReasonAudioPlaying       = "forbidden_while_audio_playing"
	ReasonInvalidStep        = "invalid_step"
	ReasonStepMismatch       = "step_mismatch"
	ReasonNotSeated          = "not_seated"
	ReasonRoleMismatch       = "role_mismatch"
	ReasonNoResolver         = "no_resolver"
	ReasonNotWolfParticipant = "not_wolf_participant"
	ReasonCannotSkip         = "cannot_skip"
	ReasonInvalidTarget      = "invalid_target"
	ReasonWolfKillDisabled   = "wolf_kill_disabled"
	ReasonCannotSaveSelf     = "cannot_save_self"
	ReasonSeatTaken          = "seat_taken"
	ReasonInvalidSeat        = "invalid_seat"
	ReasonNotYourSeat        = "not_your_seat"
	ReasonInvalidTemplate    = "invalid_template"
	ReasonPendingRevealAck   = "pending_reveal_ack"
	ReasonUnknownIntent      = "unknown_intent"
	ReasonInvalidPayload     = "invalid_payload"
	ReasonUnknownAck         = "unknown_ack"
)

// ReasonBlockedByNightmare - единственная точка правды для сообщения
// "заблокирован кошмаром". Все места, где отказ всплывает (резолверы,
// гард, UI) обязаны ссылаться сюда, литерал нигде не дублируется.
const ReasonBlockedByNightmare = "blocked_by_nightmare"
