package services

import (
	"strings"

	"github.com/nezuni1812/Vivid/application/ports/inbound"
	"github.com/nezuni1812/Vivid/domain"
)

// basicVoices maps a normalized language name to the single voice the
// basic engine offers for it. The basic engine has no gender variants.
var basicVoices = map[string]string{
	"afrikaans":  "af",
	"arabic":     "ar",
	"bengali":    "bn",
	"bulgarian":  "bg",
	"catalan":    "ca",
	"chinese":    "zh-cn",
	"croatian":   "hr",
	"czech":      "cs",
	"danish":     "da",
	"dutch":      "nl",
	"english":    "en",
	"estonian":   "et",
	"finnish":    "fi",
	"french":     "fr",
	"german":     "de",
	"greek":      "el",
	"gujarati":   "gu",
	"hindi":      "hi",
	"hungarian":  "hu",
	"icelandic":  "is",
	"indonesian": "id",
	"italian":    "it",
	"japanese":   "ja",
	"korean":     "ko",
	"latvian":    "lv",
	"lithuanian": "lt",
	"malay":      "ms",
	"malayalam":  "ml",
	"norwegian":  "no",
	"polish":     "pl",
	"portuguese": "pt",
	"romanian":   "ro",
	"russian":    "ru",
	"serbian":    "sr",
	"slovak":     "sk",
	"slovenian":  "sl",
	"spanish":    "es",
	"swahili":    "sw",
	"swedish":    "sv",
	"tamil":      "ta",
	"telugu":     "te",
	"thai":       "th",
	"turkish":    "tr",
	"ukrainian":  "uk",
	"urdu":       "ur",
	"vietnamese": "vi",
	"welsh":      "cy",
}

type neuralVoicePair struct {
	Female string
	Male   string
}

// neuralVoices maps a normalized language name to the neural engine's
// voice short-names. Not every language carries both genders; selection
// falls back requested gender -> female -> male, in that order.
var neuralVoices = map[string]neuralVoicePair{
	"afrikaans":  {Female: "af-ZA-AdriNeural", Male: "af-ZA-WillemNeural"},
	"arabic":     {Female: "ar-SA-ZariyahNeural", Male: "ar-SA-HamedNeural"},
	"bengali":    {Female: "bn-BD-NabanitaNeural", Male: "bn-BD-PradeepNeural"},
	"bulgarian":  {Female: "bg-BG-KalinaNeural", Male: "bg-BG-BorislavNeural"},
	"catalan":    {Female: "ca-ES-JoanaNeural", Male: "ca-ES-EnricNeural"},
	"chinese":    {Female: "zh-CN-XiaoxiaoNeural", Male: "zh-CN-YunxiNeural"},
	"croatian":   {Female: "hr-HR-GabrijelaNeural", Male: "hr-HR-SreckoNeural"},
	"czech":      {Female: "cs-CZ-VlastaNeural", Male: "cs-CZ-AntoninNeural"},
	"danish":     {Female: "da-DK-ChristelNeural", Male: "da-DK-JeppeNeural"},
	"dutch":      {Female: "nl-NL-ColetteNeural", Male: "nl-NL-MaartenNeural"},
	"english":    {Female: "en-US-JennyNeural", Male: "en-US-GuyNeural"},
	"estonian":   {Female: "et-EE-AnuNeural", Male: "et-EE-KertNeural"},
	"finnish":    {Female: "fi-FI-NooraNeural", Male: "fi-FI-HarriNeural"},
	"french":     {Female: "fr-FR-DeniseNeural", Male: "fr-FR-HenriNeural"},
	"german":     {Female: "de-DE-KatjaNeural", Male: "de-DE-ConradNeural"},
	"greek":      {Female: "el-GR-AthinaNeural", Male: "el-GR-NestorasNeural"},
	"gujarati":   {Female: "gu-IN-DhwaniNeural", Male: "gu-IN-NiranjanNeural"},
	"hindi":      {Female: "hi-IN-SwaraNeural", Male: "hi-IN-MadhurNeural"},
	"hungarian":  {Female: "hu-HU-NoemiNeural", Male: "hu-HU-TamasNeural"},
	"icelandic":  {Female: "is-IS-GudrunNeural", Male: "is-IS-GunnarNeural"},
	"indonesian": {Female: "id-ID-GadisNeural", Male: "id-ID-ArdiNeural"},
	"italian":    {Female: "it-IT-ElsaNeural", Male: "it-IT-DiegoNeural"},
	"japanese":   {Female: "ja-JP-NanamiNeural", Male: "ja-JP-KeitaNeural"},
	"korean":     {Female: "ko-KR-SunHiNeural", Male: "ko-KR-InJoonNeural"},
	"latvian":    {Female: "lv-LV-EveritaNeural", Male: "lv-LV-NilsNeural"},
	"lithuanian": {Female: "lt-LT-OnaNeural", Male: "lt-LT-LeonasNeural"},
	"malay":      {Female: "ms-MY-YasminNeural", Male: "ms-MY-OsmanNeural"},
	"malayalam":  {Female: "ml-IN-SobhanaNeural", Male: "ml-IN-MidhunNeural"},
	"norwegian":  {Female: "nb-NO-PernilleNeural", Male: "nb-NO-FinnNeural"},
	"polish":     {Female: "pl-PL-ZofiaNeural", Male: "pl-PL-MarekNeural"},
	"portuguese": {Female: "pt-BR-FranciscaNeural", Male: "pt-BR-AntonioNeural"},
	"romanian":   {Female: "ro-RO-AlinaNeural", Male: "ro-RO-EmilNeural"},
	"russian":    {Female: "ru-RU-SvetlanaNeural", Male: "ru-RU-DmitryNeural"},
	"serbian":    {Female: "sr-RS-SophieNeural", Male: "sr-RS-NicholasNeural"},
	"slovak":     {Female: "sk-SK-ViktoriaNeural", Male: "sk-SK-LukasNeural"},
	"slovenian":  {Female: "sl-SI-PetraNeural", Male: "sl-SI-RokNeural"},
	"spanish":    {Female: "es-ES-ElviraNeural", Male: "es-ES-AlvaroNeural"},
	"swahili":    {Female: "sw-KE-ZuriNeural", Male: "sw-KE-RafikiNeural"},
	"swedish":    {Female: "sv-SE-SofieNeural", Male: "sv-SE-MattiasNeural"},
	"tamil":      {Female: "ta-IN-PallaviNeural", Male: "ta-IN-ValluvarNeural"},
	"telugu":     {Female: "te-IN-ShrutiNeural", Male: "te-IN-MohanNeural"},
	"thai":       {Female: "th-TH-PremwadeeNeural", Male: "th-TH-NiwatNeural"},
	"turkish":    {Female: "tr-TR-EmelNeural", Male: "tr-TR-AhmetNeural"},
	"ukrainian":  {Female: "uk-UA-PolinaNeural", Male: "uk-UA-OstapNeural"},
	"urdu":       {Male: "ur-PK-AsadNeural"},
	"vietnamese": {Female: "vi-VN-HoaiMyNeural", Male: "vi-VN-NamMinhNeural"},
	"welsh":      {Female: "cy-GB-NiaNeural", Male: "cy-GB-AledNeural"},
}

type voiceResolver struct{}

func NewVoiceResolver() inbound.VoiceResolverPort {
	return &voiceResolver{}
}

func (r *voiceResolver) Resolve(language string, engine domain.TTSEngine, gender domain.VoiceGender) (domain.EngineVoice, error) {
	normalized := strings.ToLower(strings.TrimSpace(language))

	switch engine {
	case domain.BasicEngine:
		code, ok := basicVoices[normalized]
		if !ok {
			return domain.EngineVoice{}, &domain.UnsupportedLanguageError{Language: language, Engine: engine}
		}
		return domain.EngineVoice{ID: code, Engine: engine}, nil
	case domain.NeuralEngine:
		pair, ok := neuralVoices[normalized]
		if !ok {
			return domain.EngineVoice{}, &domain.UnsupportedLanguageError{Language: language, Engine: engine}
		}
		return domain.EngineVoice{ID: pair.pick(gender), Engine: engine, NativeModifiers: true}, nil
	default:
		return domain.EngineVoice{}, &domain.UnsupportedEngineError{Engine: engine}
	}
}

// pick selects the requested gender when present, then falls back to
// the female voice, then the male one. The order is fixed.
func (p neuralVoicePair) pick(gender domain.VoiceGender) string {
	if gender == domain.MaleVoice && p.Male != "" {
		return p.Male
	}
	if gender == domain.FemaleVoice && p.Female != "" {
		return p.Female
	}
	if p.Female != "" {
		return p.Female
	}
	return p.Male
}
