package actsapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"pet-activity-log/internal/domain/acts"
	"pet-activity-log/internal/platform/httpclient"
)

const basePath = "/api/todos"

// Client habla con /api/todos del servidor del log.
type Client struct {
	http *httpclient.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	hc, err := httpclient.New(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

type actDTO struct {
	ID   int64     `json:"id,omitempty"`
	Time time.Time `json:"time"`
	Type acts.Type `json:"type"`
	Text string    `json:"text"`
}

func toDTO(a acts.Act) actDTO {
	d := actDTO{Time: a.Time, Type: a.Type, Text: a.Text}
	if a.ID != acts.UnsavedID {
		d.ID = a.ID
	}
	return d
}

func (d actDTO) toAct() acts.Act {
	return acts.Act{ID: d.ID, Time: d.Time, Type: d.Type, Text: d.Text}
}

func (c *Client) List(ctx context.Context) ([]acts.Act, error) {
	var out []actDTO
	if err := c.http.DoJSON(ctx, http.MethodGet, basePath, nil, &out); err != nil {
		return nil, mapErr(err)
	}

	items := make([]acts.Act, 0, len(out))
	for _, d := range out {
		items = append(items, d.toAct())
	}
	return items, nil
}

// Create valida el texto antes de mandar; un registro inválido no sale del cliente.
func (c *Client) Create(ctx context.Context, a acts.Act) (acts.Act, error) {
	if err := acts.Validate(a.Text); err != nil {
		return acts.Act{}, err
	}

	var out actDTO
	if err := c.http.DoJSON(ctx, http.MethodPost, basePath, toDTO(a), &out); err != nil {
		return acts.Act{}, mapErr(err)
	}
	return out.toAct(), nil
}

func (c *Client) Update(ctx context.Context, a acts.Act) (acts.Act, error) {
	if a.ID <= 0 {
		return acts.Act{}, acts.ErrNotFound
	}
	if err := acts.Validate(a.Text); err != nil {
		return acts.Act{}, err
	}

	var out actDTO
	if err := c.http.DoJSON(ctx, http.MethodPut, fmt.Sprintf("%s/%d", basePath, a.ID), toDTO(a), &out); err != nil {
		return acts.Act{}, mapErr(err)
	}
	return out.toAct(), nil
}

func (c *Client) Delete(ctx context.Context, id int64) (acts.Act, error) {
	var out actDTO
	if err := c.http.DoJSON(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", basePath, id), nil, &out); err != nil {
		return acts.Act{}, mapErr(err)
	}
	return out.toAct(), nil
}

// mapErr traduce los 400 del servidor a los errores del dominio.
func mapErr(err error) error {
	var se *httpclient.StatusError
	if !errors.As(err, &se) || se.StatusCode != http.StatusBadRequest {
		return err
	}
	switch se.Message {
	case "invalid id":
		return fmt.Errorf("%w: %v", acts.ErrNotFound, err)
	case "data is not valid":
		return fmt.Errorf("%w: %v", acts.ErrInvalidInput, err)
	}
	return err
}
