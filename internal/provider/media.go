package provider

import (
	"encoding/json"
	"strings"
)

type mediaDescriptor struct {
	DownloadLink string `json:"download_link"`
	URL          string `json:"url"`
	Link         string `json:"link"`
}

func (m mediaDescriptor) link() (string, bool) {
	for _, v := range []string{m.DownloadLink, m.URL, m.Link} {
		if v != "" {
			return v, true
		}
	}
	return "", false
}

// mediaLink digs a playable URL out of a media field. Mofeed returns media
// either as a descriptor object/array or as that same JSON encoded inside a
// string, so the value may need a second decode before the download link is
// reachable. Any shape that does not yield a link reports false.
func mediaLink(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return "", false
		}
		if strings.HasPrefix(s, "http") {
			return s, true
		}
		return linkFromJSON([]byte(s))
	}

	return linkFromJSON(raw)
}

func linkFromJSON(data []byte) (string, bool) {
	var obj mediaDescriptor
	if err := json.Unmarshal(data, &obj); err == nil {
		if link, ok := obj.link(); ok {
			return link, true
		}
	}

	var list []mediaDescriptor
	if err := json.Unmarshal(data, &list); err == nil {
		for _, item := range list {
			if link, ok := item.link(); ok {
				return link, true
			}
		}
	}

	return "", false
}
