package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrRemoteFailed indicates the backend answered but reported exito=false.
	ErrRemoteFailed = errors.New("gateway: remote conversion failed")

	// ErrUnknownDirection is returned for a direction outside the two wire values.
	ErrUnknownDirection = errors.New("gateway: unknown conversion direction")
)

// Direction is the wire name of a conversion direction.
type Direction string

const (
	TextToBraille Direction = "texto-a-braille"
	BrailleToText Direction = "braille-a-texto"
)

func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.TrimSpace(s)) {
	case TextToBraille:
		return TextToBraille, nil
	case BrailleToText:
		return BrailleToText, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

type convertRequest struct {
	Texto       string `json:"texto"`
	Tipo        string `json:"tipo"`
	Dispositivo string `json:"dispositivo,omitempty"`
	Navegador   string `json:"navegador,omitempty"`
}

// RemoteResult mirrors the backend's conversion response.
type RemoteResult struct {
	ID                 int64  `json:"id,omitempty"`
	TextoOriginal      string `json:"textoOriginal"`
	Resultado          string `json:"resultado"`
	Tipo               string `json:"tipo"`
	Fecha              string `json:"fecha,omitempty"`
	Exito              bool   `json:"exito"`
	Mensaje            string `json:"mensaje"`
	LongitudOriginal   int    `json:"longitudOriginal,omitempty"`
	LongitudResultado  int    `json:"longitudResultado,omitempty"`
	TiempoConversionMs int64  `json:"tiempoConversionMs,omitempty"`
}

// Client talks to the remote conversion REST API.
type Client struct {
	baseURL string
	userID  int64
	device  string
	http    *http.Client
}

// NewClient returns a client for baseURL (e.g. https://host/api).
func NewClient(baseURL string, userID int64, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		userID:  userID,
		device:  "Desktop",
		http:    &http.Client{Timeout: timeout},
	}
}

// Convert posts text to /convertir. save asks the backend to keep a history row.
func (c *Client) Convert(ctx context.Context, text string, dir Direction, save bool) (*RemoteResult, error) {
	body, err := json.Marshal(convertRequest{
		Texto:       text,
		Tipo:        string(dir),
		Dispositivo: c.device,
		Navegador:   "brailler",
	})
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("userId", strconv.FormatInt(c.userID, 10))
	q.Set("guardar", strconv.FormatBool(save))
	endpoint := c.baseURL + "/convertir?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post convertir: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("post convertir: status %s", resp.Status)
	}

	var out RemoteResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode convertir response: %w", err)
	}
	if !out.Exito {
		return &out, fmt.Errorf("%w: %s", ErrRemoteFailed, out.Mensaje)
	}
	return &out, nil
}

// Ping checks the backend's /test endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/test", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ping: status %s", resp.Status)
	}
	return nil
}
