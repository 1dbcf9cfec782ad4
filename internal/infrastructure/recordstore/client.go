package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
	"github.com/jhoicas/Inventario-dashboard/pkg/metrics"
)

const maxResponseBytes = 8 << 20

// Options configuración del cliente.
type Options struct {
	BaseURL    string
	ProjectID  string
	PublicKey  string
	Timeout    time.Duration
	HTTPClient *http.Client // opcional; si es nil se crea uno con Timeout
	Logger     *logger.Logger
	Metrics    *metrics.Metrics
}

// Client adaptador genérico sobre la API de tablas del almacén de registros.
// No reintenta, no cachea y no agrupa llamadas: una operación, una petición.
type Client struct {
	baseURL   string
	projectID string
	publicKey string
	http      *http.Client
	log       *logger.Logger
	metrics   *metrics.Metrics
}

// NewClient construye el cliente. BaseURL es obligatorio.
func NewClient(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("recordstore: BaseURL vacío")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("recordstore: BaseURL inválido: %w", err)
	}
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:   base,
		projectID: opts.ProjectID,
		publicKey: opts.PublicKey,
		http:      hc,
		log:       log.Named("recordstore"),
		metrics:   opts.Metrics,
	}, nil
}

// ── Estructuras del protocolo ──────────────────────────────────────────────

type pagingInfo struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type fetchRequest struct {
	Fields     []string    `json:"fields,omitempty"`
	Where      []Filter    `json:"where,omitempty"`
	OrderBy    []OrderBy   `json:"orderBy,omitempty"`
	PagingInfo *pagingInfo `json:"pagingInfo,omitempty"`
}

type getRequest struct {
	Fields []string `json:"fields,omitempty"`
}

type writeRequest struct {
	Records []Record `json:"records"`
}

type deleteRequest struct {
	RecordIDs []any `json:"RecordIds"`
}

type recordResult struct {
	Success bool   `json:"success"`
	Data    Record `json:"data"`
	Message string `json:"message"`
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Results []recordResult  `json:"results"`
}

// ── Operaciones ─────────────────────────────────────────────────────────────

// Fetch lista registros de la tabla que cumplen todos los filtros.
func (c *Client) Fetch(ctx context.Context, table string, params FetchParams) ([]Record, error) {
	req := fetchRequest{Fields: params.Fields, Where: params.Where, OrderBy: params.OrderBy}
	if params.Limit > 0 || params.Offset > 0 {
		req.PagingInfo = &pagingInfo{Limit: params.Limit, Offset: params.Offset}
	}
	env, err := c.do(ctx, table, "fetch", "/fetch", req)
	if err != nil {
		return nil, err
	}
	var out []Record
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := decodeJSON(env.Data, &out); err != nil {
			return nil, &RemoteError{Table: table, Op: "fetch", Message: "respuesta ilegible", Err: err}
		}
	}
	return out, nil
}

// GetByID obtiene un registro por id. Devuelve domain.ErrNotFound si data es null.
func (c *Client) GetByID(ctx context.Context, table, id string, fields []string) (Record, error) {
	if id == "" {
		return nil, fmt.Errorf("recordstore: id vacío: %w", domain.ErrInvalidInput)
	}
	env, err := c.do(ctx, table, "get", "/records/"+url.PathEscape(id), getRequest{Fields: fields})
	if err != nil {
		return nil, err
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, fmt.Errorf("%s %s: %w", table, id, domain.ErrNotFound)
	}
	var rec Record
	if err := decodeJSON(env.Data, &rec); err != nil {
		return nil, &RemoteError{Table: table, Op: "get", Message: "respuesta ilegible", Err: err}
	}
	if rec == nil {
		return nil, fmt.Errorf("%s %s: %w", table, id, domain.ErrNotFound)
	}
	return rec, nil
}

// Create inserta registros y devuelve los almacenados (con Id asignado por el backend).
func (c *Client) Create(ctx context.Context, table string, records []Record) ([]Record, error) {
	return c.write(ctx, table, "create", records)
}

// Update actualiza registros; cada uno debe incluir Id.
func (c *Client) Update(ctx context.Context, table string, records []Record) ([]Record, error) {
	for i, r := range records {
		if asString(r["Id"]) == "" {
			return nil, fmt.Errorf("recordstore: update %s: registro #%d sin Id: %w", table, i, domain.ErrInvalidInput)
		}
	}
	return c.write(ctx, table, "update", records)
}

// Delete elimina los registros indicados.
func (c *Client) Delete(ctx context.Context, table string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	recordIDs := make([]any, 0, len(ids))
	for _, id := range ids {
		recordIDs = append(recordIDs, IDValue(id))
	}
	env, err := c.do(ctx, table, "delete", "/delete", deleteRequest{RecordIDs: recordIDs})
	if err != nil {
		return err
	}
	return batchResult(table, "delete", env.Results)
}

func (c *Client) write(ctx context.Context, table, op string, records []Record) ([]Record, error) {
	if len(records) == 0 {
		return nil, nil
	}
	env, err := c.do(ctx, table, op, "/"+op, writeRequest{Records: records})
	if err != nil {
		return nil, err
	}
	if err := batchResult(table, op, env.Results); err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(env.Results))
	for _, r := range env.Results {
		out = append(out, r.Data)
	}
	return out, nil
}

// batchResult convierte los fallos por registro en un *BatchError.
func batchResult(table, op string, results []recordResult) error {
	var failures []RecordFailure
	for i, r := range results {
		if !r.Success {
			failures = append(failures, RecordFailure{Index: i, Message: r.Message})
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return &BatchError{Table: table, Op: op, Succeeded: len(results) - len(failures), Failures: failures}
}

// do ejecuta POST {base}/tables/{table}{path} y valida el sobre de respuesta.
func (c *Client) do(ctx context.Context, table, op, path string, payload any) (*envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("recordstore: serializar %s %s: %w", op, table, err)
	}
	endpoint := c.baseURL + "/tables/" + url.PathEscape(table) + path

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &RemoteError{Table: table, Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.projectID != "" {
		req.Header.Set("X-Project-Id", c.projectID)
	}
	if c.publicKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.publicKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	elapsed := time.Since(start)
	c.metrics.ObserveStoreCall(table, op, elapsed)
	if err != nil {
		c.log.Debug().Str("table", table).Str("op", op).Dur("elapsed", elapsed).Err(err).Msg("llamada fallida")
		if ctx.Err() != nil {
			return nil, &RemoteError{Table: table, Op: op, Message: "timeout o cancelación", Err: ctx.Err()}
		}
		return nil, &RemoteError{Table: table, Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &RemoteError{Table: table, Op: op, StatusCode: resp.StatusCode, Message: "leer respuesta", Err: err}
	}
	c.log.Debug().
		Str("table", table).
		Str("op", op).
		Int("status", resp.StatusCode).
		Dur("elapsed", elapsed).
		Msg("llamada al almacén de registros")

	var env envelope
	decodeErr := decodeJSON(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(raw))
		if decodeErr == nil && env.Message != "" {
			msg = env.Message
		}
		if resp.StatusCode == http.StatusNotFound && op == "get" {
			return nil, fmt.Errorf("%s: %s: %w", table, msg, domain.ErrNotFound)
		}
		return nil, &RemoteError{Table: table, Op: op, StatusCode: resp.StatusCode, Message: truncate(msg, 512)}
	}
	if decodeErr != nil {
		return nil, &RemoteError{Table: table, Op: op, StatusCode: resp.StatusCode, Message: "respuesta ilegible", Err: decodeErr}
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "operación rechazada"
		}
		return nil, &RemoteError{Table: table, Op: op, StatusCode: resp.StatusCode, Message: msg}
	}
	return &env, nil
}

// decodeJSON decodifica conservando los números como json.Number.
func decodeJSON(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(v)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
