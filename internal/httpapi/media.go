package httpapi

import (
	"mime"
	"strconv"
	"strings"

	"sheetfmt/internal/domain"
)

const mediaJSON = "application/json"

// checkContentType requires a JSON request body; parameters such as
// charset are ignored.
func checkContentType(header string) error {
	if header == "" {
		return domain.Errorf("httpapi.content_type", domain.KindUnsupported,
			"missing Content-Type, expected %s", mediaJSON)
	}
	mt, _, err := mime.ParseMediaType(header)
	if err != nil || mt != mediaJSON {
		return domain.Errorf("httpapi.content_type", domain.KindUnsupported,
			"unsupported Content-Type %q, expected %s", header, mediaJSON)
	}
	return nil
}

// checkAccept succeeds when the Accept header is absent or any listed
// range with a non-zero quality covers application/json.
func checkAccept(header string) error {
	if strings.TrimSpace(header) == "" {
		return nil
	}
	for _, part := range strings.Split(header, ",") {
		mt, params, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if q, ok := params["q"]; ok {
			if v, err := strconv.ParseFloat(q, 64); err != nil || v <= 0 {
				continue
			}
		}
		switch mt {
		case "*/*", "application/*", mediaJSON:
			return nil
		}
	}
	return domain.Errorf("httpapi.accept", domain.KindNotAcceptable,
		"Accept %q does not include %s", header, mediaJSON)
}
