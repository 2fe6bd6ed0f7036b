package yt

import (
	"errors"
	"regexp"
	"strings"
)

// channelPrefix : seules les URLs de chaîne en @handle sont acceptées.
const channelPrefix = "https://www.youtube.com/@"

var ErrNotChannelURL = errors.New("not a youtube channel url (expected " + channelPrefix + "name)")

var ytRegex = regexp.MustCompile(`(?i)https?://(www\.)?(youtube\.com/watch\?v=|youtu\.be/)`)

// IsYouTubeURL reconnaît une URL de vidéo.
func IsYouTubeURL(s string) bool {
	return ytRegex.MatchString(s)
}

// IsChannelURL reconnaît une URL de chaîne (https://www.youtube.com/@nom).
func IsChannelURL(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, channelPrefix) && len(s) > len(channelPrefix)
}

// ChannelVideosURL retourne l'onglet "videos" de la chaîne.
func ChannelVideosURL(channel string) (string, error) {
	channel = strings.TrimSpace(channel)
	if !IsChannelURL(channel) {
		return "", ErrNotChannelURL
	}
	channel = strings.TrimRight(channel, "/")
	if strings.HasSuffix(channel, "/videos") {
		return channel, nil
	}
	return channel + "/videos", nil
}
