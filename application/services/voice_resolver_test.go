package services

import (
	"errors"
	"testing"

	"github.com/nezuni1812/Vivid/domain"
)

func TestVoiceResolver_BasicEngine(t *testing.T) {
	resolver := NewVoiceResolver()

	voice, err := resolver.Resolve("English", domain.BasicEngine, domain.MaleVoice)
	if err != nil {
		t.Fatal("Failed to resolve basic english voice:", err)
	}
	if voice.ID != "en" {
		t.Errorf("voice ID = %q, want %q", voice.ID, "en")
	}
	if voice.NativeModifiers {
		t.Error("basic engine must not report native modifier support")
	}

	// The basic engine has one voice per language; gender is ignored.
	other, err := resolver.Resolve("english", domain.BasicEngine, domain.FemaleVoice)
	if err != nil {
		t.Fatal("Failed to resolve basic english voice:", err)
	}
	if other.ID != voice.ID {
		t.Errorf("gender changed the basic voice: %q vs %q", other.ID, voice.ID)
	}
}

func TestVoiceResolver_NeuralGenderSelection(t *testing.T) {
	resolver := NewVoiceResolver()

	female, err := resolver.Resolve("vietnamese", domain.NeuralEngine, domain.FemaleVoice)
	if err != nil {
		t.Fatal("Failed to resolve neural voice:", err)
	}
	if female.ID != "vi-VN-HoaiMyNeural" {
		t.Errorf("female voice = %q, want vi-VN-HoaiMyNeural", female.ID)
	}
	if !female.NativeModifiers {
		t.Error("neural engine must report native modifier support")
	}

	male, err := resolver.Resolve("vietnamese", domain.NeuralEngine, domain.MaleVoice)
	if err != nil {
		t.Fatal("Failed to resolve neural voice:", err)
	}
	if male.ID != "vi-VN-NamMinhNeural" {
		t.Errorf("male voice = %q, want vi-VN-NamMinhNeural", male.ID)
	}
}

func TestVoiceResolver_FallbackOrder(t *testing.T) {
	resolver := NewVoiceResolver()

	// urdu carries only a male neural voice: an unknown gender value
	// falls through female to male without raising.
	voice, err := resolver.Resolve("urdu", domain.NeuralEngine, domain.VoiceGender("unspecified"))
	if err != nil {
		t.Fatal("Fallback resolution failed:", err)
	}
	if voice.ID != "ur-PK-AsadNeural" {
		t.Errorf("fallback voice = %q, want ur-PK-AsadNeural", voice.ID)
	}

	// A female request for a male-only language also falls back.
	voice, err = resolver.Resolve("urdu", domain.NeuralEngine, domain.FemaleVoice)
	if err != nil {
		t.Fatal("Fallback resolution failed:", err)
	}
	if voice.ID != "ur-PK-AsadNeural" {
		t.Errorf("fallback voice = %q, want ur-PK-AsadNeural", voice.ID)
	}

	// When both genders exist, an unknown gender value prefers female.
	voice, err = resolver.Resolve("english", domain.NeuralEngine, domain.VoiceGender("unspecified"))
	if err != nil {
		t.Fatal("Fallback resolution failed:", err)
	}
	if voice.ID != "en-US-JennyNeural" {
		t.Errorf("fallback voice = %q, want en-US-JennyNeural", voice.ID)
	}
}

func TestVoiceResolver_UnsupportedLanguage(t *testing.T) {
	resolver := NewVoiceResolver()

	_, err := resolver.Resolve("klingon", domain.BasicEngine, domain.FemaleVoice)
	var langErr *domain.UnsupportedLanguageError
	if !errors.As(err, &langErr) {
		t.Fatalf("expected UnsupportedLanguageError, got %v", err)
	}

	_, err = resolver.Resolve("klingon", domain.NeuralEngine, domain.FemaleVoice)
	if !errors.As(err, &langErr) {
		t.Fatalf("expected UnsupportedLanguageError, got %v", err)
	}
}

func TestVoiceResolver_UnsupportedEngine(t *testing.T) {
	resolver := NewVoiceResolver()

	_, err := resolver.Resolve("english", domain.TTSEngine("robotic_tts"), domain.FemaleVoice)
	var engineErr *domain.UnsupportedEngineError
	if !errors.As(err, &engineErr) {
		t.Fatalf("expected UnsupportedEngineError, got %v", err)
	}
}
