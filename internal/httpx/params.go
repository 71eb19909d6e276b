package httpx

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/gorilla/schema"
)

var decoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

// Params decodes the body of a POST request into v based on the Content-Type
// header. A body that cannot be decoded into v is a 422.
func Params(r *http.Request, v any) error {
	switch mediaType(r) {
	case "application/json", "":
		if err := json.UnmarshalFull(r.Body, v); err != nil {
			return Error(http.StatusUnprocessableEntity, err)
		}
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return Error(http.StatusBadRequest, err)
		}
		if err := decoder.Decode(v, r.PostForm); err != nil {
			return Error(http.StatusUnprocessableEntity, err)
		}
	default:
		return Error(http.StatusUnsupportedMediaType, fmt.Errorf("unsupported media type: %q", r.Header.Get("Content-Type")))
	}
	return nil
}

// mediaType returns the media type of the request.
func mediaType(req *http.Request) string {
	return strings.TrimSpace(strings.Split(req.Header.Get("Content-Type"), ";")[0])
}
