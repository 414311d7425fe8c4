package domain

type TTSEngine string

const (
	BasicEngine  TTSEngine = "basic_tts"
	NeuralEngine TTSEngine = "neural_tts"
)

type VoiceGender string

const (
	MaleVoice   VoiceGender = "male"
	FemaleVoice VoiceGender = "female"
)

// SentenceUnit is one sentence of the narration script. Ordinal is the
// position of the sentence in the original script and drives the final
// chunk ordering in the timeline.
type SentenceUnit struct {
	Ordinal int
	Text    string
}

// EngineVoice is a resolved synthesis voice. NativeModifiers reports
// whether the engine applies speed and pitch at synthesis time, in which
// case the effect processor must not apply them again.
type EngineVoice struct {
	ID              string
	Engine          TTSEngine
	NativeModifiers bool
}

const (
	MinSpeed  = 0.5
	MaxSpeed  = 2.0
	MinPitch  = 0.5
	MaxPitch  = 2.0
	MinVolume = -12.0
	MaxVolume = 12.0
)

type EffectParams struct {
	Speed    float64
	Pitch    float64
	VolumeDB float64
}

func IdentityEffectParams() EffectParams {
	return EffectParams{Speed: 1.0, Pitch: 1.0, VolumeDB: 0.0}
}

func (p EffectParams) IsIdentity() bool {
	return p.Speed == 1.0 && p.Pitch == 1.0 && p.VolumeDB == 0.0
}

func (p EffectParams) Validate() error {
	if p.Speed < MinSpeed || p.Speed > MaxSpeed {
		return NewEffectRangeError("speed", p.Speed, MinSpeed, MaxSpeed)
	}
	if p.Pitch < MinPitch || p.Pitch > MaxPitch {
		return NewEffectRangeError("pitch", p.Pitch, MinPitch, MaxPitch)
	}
	if p.VolumeDB < MinVolume || p.VolumeDB > MaxVolume {
		return NewEffectRangeError("volume_db", p.VolumeDB, MinVolume, MaxVolume)
	}
	return nil
}

// AudioChunk is one sentence's synthesized audio. Data holds encoded MP3
// bytes, Duration is seconds measured after any effects were applied.
// Chunks move linearly through the pipeline and are never shared between
// stages.
type AudioChunk struct {
	Ordinal  int
	Text     string
	Data     []byte
	Duration float64
}

type AudioChunksAscByOrdinal []AudioChunk

func (c AudioChunksAscByOrdinal) Len() int           { return len(c) }
func (c AudioChunksAscByOrdinal) Swap(i, j int)      { c[i], c[j] = c[j], c[i] }
func (c AudioChunksAscByOrdinal) Less(i, j int) bool { return c[i].Ordinal < c[j].Ordinal }

// TimingEntry marks where one sentence starts and ends in the combined
// audio. Times are seconds rounded to two decimals at emission.
type TimingEntry struct {
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	Content   string  `json:"content"`
}

// SynthesisResult is the pipeline's terminal artifact. AudioFileName
// points at the combined MP3 on local disk; the caller takes ownership
// of the file and must remove it once stored.
type SynthesisResult struct {
	AudioFileName string
	Timings       []TimingEntry
}
