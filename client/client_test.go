package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testDate = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

// recordingServer captures the last request and answers with a canned response.
type recordingServer struct {
	lastMethod string
	lastPath   string
	lastBody   string

	status int
	body   string
}

func (s *recordingServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.lastMethod = r.Method
		s.lastPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		s.lastBody = string(b)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(s.status)
		_, _ = w.Write([]byte(s.body))
	}
}

func TestListProducts(t *testing.T) {
	srv := &recordingServer{
		status: http.StatusOK,
		body:   `[{"id":"id-1","name":"Teclado","description":"Mecánico","price":49.99,"quantity":5,"dateAdded":"2024-03-10T09:30:00Z"},{"id":"id-2","name":"Ratón","description":"Inalámbrico","price":19.5,"quantity":12,"dateAdded":"2024-03-10T09:30:00Z"}]`,
	}
	ts := httptest.NewServer(srv.handler())
	defer ts.Close()

	products, err := New(ts.URL).ListProducts(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "GET", srv.lastMethod)
	assert.Equal(t, "/", srv.lastPath)
	assert.Len(t, products, 2)
	assert.Equal(t, "id-1", products[0].ID, "order must be preserved")
	assert.Equal(t, "Teclado", products[0].Name)
	assert.Equal(t, 49.99, products[0].Price)
	assert.Equal(t, testDate, products[0].DateAdded)
	assert.Equal(t, "id-2", products[1].ID)
}

func TestGetProduct(t *testing.T) {
	srv := &recordingServer{
		status: http.StatusOK,
		body:   `{"id":"id-1","name":"Teclado","description":"Mecánico","price":49.99,"quantity":5,"dateAdded":"2024-03-10T09:30:00Z"}`,
	}
	ts := httptest.NewServer(srv.handler())
	defer ts.Close()

	product, err := New(ts.URL).GetProduct(context.Background(), "id-1")

	assert.NoError(t, err)
	assert.Equal(t, "GET", srv.lastMethod)
	assert.Equal(t, "/id-1", srv.lastPath)
	assert.Equal(t, "Teclado", product.Name)
	assert.Equal(t, 5, product.Quantity)
}

func TestGetProductNotFound(t *testing.T) {
	srv := &recordingServer{status: http.StatusNotFound, body: `{"message":"Producto no encontrado."}`}
	ts := httptest.NewServer(srv.handler())
	defer ts.Close()

	_, err := New(ts.URL).GetProduct(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateProduct(t *testing.T) {
	srv := &recordingServer{
		status: http.StatusCreated,
		body:   `{"id":"generated-id","name":"Monitor","description":"27 pulgadas","price":199.99,"quantity":4,"dateAdded":"2024-03-10T09:30:00Z"}`,
	}
	ts := httptest.NewServer(srv.handler())
	defer ts.Close()

	created, err := New(ts.URL).CreateProduct(context.Background(), ProductInput{
		Name:        "Monitor",
		Description: "27 pulgadas",
		Price:       199.99,
		Quantity:    4,
	})

	assert.NoError(t, err)
	assert.Equal(t, "POST", srv.lastMethod)
	assert.Equal(t, "/", srv.lastPath)
	assert.Equal(t, "generated-id", created.ID)
	assert.Equal(t, testDate, created.DateAdded)

	var sent ProductInput
	assert.NoError(t, json.Unmarshal([]byte(srv.lastBody), &sent))
	assert.Equal(t, "Monitor", sent.Name)
	assert.Equal(t, 199.99, sent.Price)
	assert.Equal(t, 4, sent.Quantity)
}

func TestUpdateProduct(t *testing.T) {
	srv := &recordingServer{
		status: http.StatusOK,
		body:   `{"id":"id-1","name":"Monitor 4K","description":"27 pulgadas","price":299.99,"quantity":2,"dateAdded":"2024-03-10T09:30:00Z"}`,
	}
	ts := httptest.NewServer(srv.handler())
	defer ts.Close()

	updated, err := New(ts.URL).UpdateProduct(context.Background(), "id-1", ProductInput{
		Name:        "Monitor 4K",
		Description: "27 pulgadas",
		Price:       299.99,
		Quantity:    2,
	})

	assert.NoError(t, err)
	assert.Equal(t, "PUT", srv.lastMethod)
	assert.Equal(t, "/id-1", srv.lastPath)
	assert.Equal(t, "Monitor 4K", updated.Name)
}

func TestDeleteProduct(t *testing.T) {
	srv := &recordingServer{status: http.StatusOK, body: `{"message":"Producto eliminado correctamente."}`}
	ts := httptest.NewServer(srv.handler())
	defer ts.Close()

	err := New(ts.URL).DeleteProduct(context.Background(), "id-1")

	assert.NoError(t, err)
	assert.Equal(t, "DELETE", srv.lastMethod)
	assert.Equal(t, "/id-1", srv.lastPath)
}

func TestUnexpectedStatus(t *testing.T) {
	srv := &recordingServer{status: http.StatusInternalServerError, body: `{"message":"Error al obtener los productos."}`}
	ts := httptest.NewServer(srv.handler())
	defer ts.Close()

	_, err := New(ts.URL).ListProducts(context.Background())

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "500")
}

func TestTransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close() // closed on purpose

	_, err := New(ts.URL).ListProducts(context.Background())
	assert.Error(t, err)
}
