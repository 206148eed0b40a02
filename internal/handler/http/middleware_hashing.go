package http

import (
	"bytes"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/MKhiriev/go-auth-service/internal/utils"
)

// hashHeader carries the hex-encoded HMAC-SHA256 signature of the raw
// request body.
const hashHeader = "HashSHA256"

// withIntegrityCheck verifies the HMAC signature of the request body when
// the client supplies one. Requests without the header pass through
// unchecked so that clients unaware of the shared key keep working; a
// present-but-wrong signature is rejected with 400.
//
// Only wired when App.HashKey is configured.
func (h *Handler) withIntegrityCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hashFromRequest := r.Header.Get(hashHeader)
		if hashFromRequest == "" {
			next.ServeHTTP(w, r)
			return
		}

		h.logger.Debug().Str("func", "*Handler.withIntegrityCheck").Msg("checking hash begins")

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.withIntegrityCheck").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		hashedBody := hex.EncodeToString(utils.Hash(body))
		if hashedBody != hashFromRequest {
			h.logger.Error().Str("func", "*Handler.withIntegrityCheck").
				Str("hash from request", hashFromRequest).
				Str("hashed body", hashedBody).
				Msg("hashes are not equal")
			http.Error(w, "Integrity check failed", http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
