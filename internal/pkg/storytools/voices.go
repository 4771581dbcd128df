package storytools

import (
	"regexp"
	"strings"
)

// VoiceProfile is a synthesis voice with pitch and rate adjustment.
// Comparable so consecutive lines with the same resolved voice can be
// grouped.
type VoiceProfile struct {
	Name  string
	Pitch string // percent ("+5%") or semitone ("+2st") notation
	Rate  string
}

// voiceMap holds the per-role voice table for one language.
type voiceMap struct {
	narrator    VoiceProfile
	child       VoiceProfile
	mother      VoiceProfile
	father      VoiceProfile
	grandmother VoiceProfile
	grandfather VoiceProfile
	smallAnimal VoiceProfile
	largeAnimal VoiceProfile
}

func voiceMapEN(voicePref string) voiceMap {
	female := VoiceProfile{Name: "en-US-JennyNeural", Pitch: "0%", Rate: "0%"}
	male := VoiceProfile{Name: "en-US-GuyNeural", Pitch: "0%", Rate: "0%"}

	narrator := female
	child := VoiceProfile{Name: female.Name, Pitch: "+10%", Rate: "0%"}
	smallAnimal := VoiceProfile{Name: female.Name, Pitch: "+15%", Rate: "0%"}
	if voicePref == "male" {
		narrator = male
		child = VoiceProfile{Name: male.Name, Pitch: "+10%", Rate: "0%"}
		smallAnimal = VoiceProfile{Name: male.Name, Pitch: "+15%", Rate: "0%"}
	}

	return voiceMap{
		narrator:    narrator,
		child:       child,
		mother:      VoiceProfile{Name: female.Name, Pitch: "+5%", Rate: "0%"},
		father:      VoiceProfile{Name: male.Name, Pitch: "-5%", Rate: "0%"},
		grandmother: VoiceProfile{Name: female.Name, Pitch: "-5%", Rate: "-5%"},
		grandfather: VoiceProfile{Name: male.Name, Pitch: "-10%", Rate: "-10%"},
		smallAnimal: smallAnimal,
		largeAnimal: VoiceProfile{Name: male.Name, Pitch: "-15%", Rate: "0%"},
	}
}

func voiceMapKO(voicePref string) voiceMap {
	femaleNarrator := VoiceProfile{Name: "ko-KR-SunHiNeural", Pitch: "0%", Rate: "0%"}
	femaleChild := VoiceProfile{Name: "ko-KR-JiMinNeural", Pitch: "+2st", Rate: "0%"}
	maleNarrator := VoiceProfile{Name: "ko-KR-InJoonNeural", Pitch: "0%", Rate: "0%"}
	maleChild := VoiceProfile{Name: "ko-KR-InJoonNeural", Pitch: "+2st", Rate: "0%"}
	maleGrandfather := VoiceProfile{Name: "ko-KR-BongJinNeural", Pitch: "-2st", Rate: "-5%"}

	narrator := femaleNarrator
	child := femaleChild
	if voicePref == "male" {
		narrator = maleNarrator
		child = maleChild
	}

	return voiceMap{
		narrator:    narrator,
		child:       child,
		mother:      VoiceProfile{Name: "ko-KR-SunHiNeural", Pitch: "+1st", Rate: "0%"},
		father:      VoiceProfile{Name: "ko-KR-InJoonNeural", Pitch: "-1st", Rate: "0%"},
		grandmother: VoiceProfile{Name: "ko-KR-SunHiNeural", Pitch: "0%", Rate: "-5%"},
		grandfather: maleGrandfather,
		smallAnimal: child,
		largeAnimal: maleGrandfather,
	}
}

var (
	smallAnimalKO = regexp.MustCompile(`토끼|다람쥐|새|병아리|강아지|고양이|쥐|새끼`)
	largeAnimalKO = regexp.MustCompile(`곰|부엉이|호랑이|사자|코끼리`)
	smallAnimalEN = regexp.MustCompile(`rabbit|squirrel|bird|puppy|kitten|mouse|cub`)
	largeAnimalEN = regexp.MustCompile(`bear|owl|tiger|lion|elephant`)
)

// ResolveVoice maps a speaker label to a voice profile. Resolution order:
// per-language role table, then the protagonist's given name (child
// voice), then the narrator voice as the default. characterName is the
// protagonist's name from the story profile.
func ResolveVoice(speaker, language, characterName, voicePref string) VoiceProfile {
	s := strings.ToLower(strings.TrimSpace(speaker))

	if language == "en" {
		vm := voiceMapEN(voicePref)
		switch {
		case strings.Contains(s, "narrator"):
			return vm.narrator
		case strings.Contains(s, "grandmother"):
			return vm.grandmother
		case strings.Contains(s, "grandfather"):
			return vm.grandfather
		case strings.Contains(s, "mother"):
			return vm.mother
		case strings.Contains(s, "father"):
			return vm.father
		case smallAnimalEN.MatchString(s):
			return vm.smallAnimal
		case largeAnimalEN.MatchString(s):
			return vm.largeAnimal
		case strings.TrimSpace(speaker) == characterName:
			return vm.child
		default:
			return vm.narrator
		}
	}

	vm := voiceMapKO(voicePref)
	switch {
	case strings.Contains(s, "나레이터"), strings.Contains(s, "narrator"):
		return vm.narrator
	case strings.Contains(s, "엄마"), strings.Contains(s, "어머니"):
		return vm.mother
	case strings.Contains(s, "아빠"), strings.Contains(s, "아버지"):
		return vm.father
	case strings.Contains(s, "할머니"):
		return vm.grandmother
	case strings.Contains(s, "할아버지"):
		return vm.grandfather
	case smallAnimalKO.MatchString(s):
		return vm.smallAnimal
	case largeAnimalKO.MatchString(s):
		return vm.largeAnimal
	case strings.TrimSpace(speaker) == characterName:
		return vm.child
	default:
		return vm.narrator
	}
}
