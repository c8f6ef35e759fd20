package cloudinary

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tu-usuario/tienda-virtual/internal/application/usecase"
	"github.com/tu-usuario/tienda-virtual/internal/domain"
	"github.com/tu-usuario/tienda-virtual/pkg/config"
)

// Verificar en tiempo de compilación que Uploader implementa ImageUploader.
var _ usecase.ImageUploader = (*Uploader)(nil)

// Uploader adaptador del API de subida de Cloudinary.
// Usa net/http de la librería estándar; no requiere el SDK oficial.
type Uploader struct {
	cloudName  string
	apiKey     string
	apiSecret  string
	folder     string
	httpClient *http.Client
	now        func() time.Time
}

// NewUploader construye el adaptador con las credenciales de configuración.
// Si faltan credenciales las subidas devuelven error descriptivo en lugar de panic.
func NewUploader(cfg config.CloudinaryConfig) *Uploader {
	return &Uploader{
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		folder:    cfg.Folder,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		now: time.Now,
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sube la imagen (data URI Base64 o URL pública) mediante una petición
// firmada y devuelve la URL HTTPS del recurso alojado.
func (u *Uploader) Upload(ctx context.Context, source string) (string, error) {
	if u.cloudName == "" || u.apiKey == "" || u.apiSecret == "" {
		return "", fmt.Errorf("cloudinary: credenciales no configuradas")
	}

	timestamp := strconv.FormatInt(u.now().Unix(), 10)
	params := map[string]string{
		"folder":    u.folder,
		"timestamp": timestamp,
	}

	form := url.Values{}
	form.Set("file", source)
	form.Set("api_key", u.apiKey)
	form.Set("signature", signParams(params, u.apiSecret))
	for k, v := range params {
		form.Set(k, v)
	}

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", u.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("cloudinary: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("cloudinary: leer respuesta: %w", err)
	}

	var parsed uploadResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("cloudinary: respuesta inválida: %w", err)
	}
	if resp.StatusCode != http.StatusOK || parsed.Error != nil {
		msg := http.StatusText(resp.StatusCode)
		if parsed.Error != nil {
			msg = parsed.Error.Message
		}
		return "", fmt.Errorf("%w: %s", domain.ErrUploadFailed, msg)
	}
	if parsed.SecureURL == "" {
		return "", domain.ErrUploadFailed
	}
	return parsed.SecureURL, nil
}

// signParams calcula la firma SHA-1 que exige el API de subida: los parámetros
// ordenados alfabéticamente, serializados como query string, con el secreto al final.
func signParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}
