package media

import "strings"

// Natively decodable formats. Anything else is offered to the ffmpeg
// fallback in the player package.
var audioExts = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".flac": true,
	".ogg":  true,
}

// IsSupportedExt returns true if the extension has a native decoder.
func IsSupportedExt(ext string) bool {
	return audioExts[strings.ToLower(ext)]
}

// SupportedExtsList returns a human-readable list of natively decoded formats.
func SupportedExtsList() string {
	return ".mp3, .wav, .flac, .ogg"
}
