package inbound

import "github.com/nezuni1812/Vivid/domain"

// VoiceResolverPort maps a (language, engine, gender) tuple to a
// concrete engine voice. Pure table lookup.
type VoiceResolverPort interface {
	Resolve(language string, engine domain.TTSEngine, gender domain.VoiceGender) (domain.EngineVoice, error)
}
