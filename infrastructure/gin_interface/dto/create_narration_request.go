package dto

import "github.com/nezuni1812/Vivid/domain"

type CreateNarrationRequest struct {
	Script           string  `json:"script" binding:"required"`
	ScriptID         string  `json:"script_id"`
	Language         string  `json:"language" binding:"required"`
	Engine           string  `json:"engine"`
	Gender           string  `json:"gender"`
	Speed            float64 `json:"speed"`
	Pitch            float64 `json:"pitch"`
	VolumeDB         float64 `json:"volume_db"`
	PreviousAudioURL string  `json:"previous_audio_url"`
}

// EffectParams applies the identity defaults for omitted fields; a JSON
// zero is indistinguishable from an absent speed or pitch, and neither
// is a meaningful factor.
func (r CreateNarrationRequest) EffectParams() domain.EffectParams {
	params := domain.IdentityEffectParams()
	if r.Speed != 0 {
		params.Speed = r.Speed
	}
	if r.Pitch != 0 {
		params.Pitch = r.Pitch
	}
	params.VolumeDB = r.VolumeDB
	return params
}

func (r CreateNarrationRequest) EngineOrDefault() domain.TTSEngine {
	if r.Engine == "" {
		return domain.BasicEngine
	}
	return domain.TTSEngine(r.Engine)
}

func (r CreateNarrationRequest) GenderOrDefault() domain.VoiceGender {
	if r.Gender == "" {
		return domain.FemaleVoice
	}
	return domain.VoiceGender(r.Gender)
}

type CreateNarrationResponse struct {
	NarrationID string               `json:"narration_id"`
	AudioURL    string               `json:"audio_url"`
	Timings     []domain.TimingEntry `json:"timings"`
}
