package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p JoinSeatPayload) Validate() error {
	if p.Seat < 0 {
		return errors.New("seat must be non-negative")
	}
	return nil
}

func (p SubmitActionPayload) Validate() error {
	if p.Seat < 0 {
		return errors.New("seat must be non-negative")
	}
	if p.Role == "" {
		return errors.New("role is required")
	}
	return nil
}

func (p WolfVotePayload) Validate() error {
	if p.Seat < 0 {
		return errors.New("seat must be non-negative")
	}
	if p.Target < -1 {
		return errors.New("target must be a seat or the -1 sentinel")
	}
	return nil
}

func (p ViewedRolePayload) Validate() error {
	if p.Seat < 0 {
		return errors.New("seat must be non-negative")
	}
	return nil
}

func (p UpdateTemplatePayload) Validate() error {
	if len(p.Roles) == 0 && p.Preset == "" {
		return errors.New("either roles or preset is required")
	}
	return nil
}

func (p ShareNightReviewPayload) Validate() error {
	for _, s := range p.Seats {
		if s < 0 {
			return errors.New("seats must be non-negative")
		}
	}
	return nil
}

func (p AckRevealPayload) Validate() error {
	if p.Key == "" {
		return errors.New("key is required")
	}
	return nil
}
