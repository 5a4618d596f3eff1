package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/store-api/internal/application/auth"
	"github.com/jhoicas/store-api/internal/application/usecase"
	apphttp "github.com/jhoicas/store-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/store-api/pkg/jwt"
)

// testServer aplicación completa con repositorios en memoria.
type testServer struct {
	app        *fiber.App
	users      *memUserRepo
	products   *memProductRepo
	categories *memCategoryRepo
	cart       *memCartRepo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	users := newMemUserRepo()
	categories := newMemCategoryRepo()
	products := newMemProductRepo(categories)
	cart := newMemCartRepo(products)

	issue := func(userID, role string) (string, error) {
		return pkgjwt.Generate(testJWTSecret, userID, role, testIssuer, testExpMin)
	}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     auth.NewAuthUseCase(users, issue, nil),
		ProductUC:  usecase.NewProductUseCase(products, categories),
		CategoryUC: usecase.NewCategoryUseCase(categories),
		CartUC:     usecase.NewCartUseCase(cart, products),
		UserRepo:   users,
		JWTSecret:  testJWTSecret,
	})
	return &testServer{app: app, users: users, products: products, categories: categories, cart: cart}
}

// do lanza una petición JSON y decodifica la respuesta en out (si no es nil).
func (s *testServer) do(t *testing.T, method, path, token string, body any, out any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
		resp.Body.Close()
	}
	return resp
}

// register registra un usuario y devuelve id y token.
func (s *testServer) register(t *testing.T, name, email, role string) (id, token string) {
	t.Helper()
	var out map[string]string
	resp := s.do(t, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": name, "email": email, "password": "pw123456", "role": role,
	}, &out)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "registro de %s debe dar 201", email)
	require.NotEmpty(t, out["token"])
	return out["id"], out["token"]
}

// createCategory crea una categoría y devuelve su id.
func (s *testServer) createCategory(t *testing.T, token, name string) string {
	t.Helper()
	var out map[string]any
	resp := s.do(t, http.MethodPost, "/api/categories", token, fiber.Map{"name": name}, &out)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return out["id"].(string)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario completo: registro → perfil → cambio de password → carrito
// ──────────────────────────────────────────────────────────────────────────────

func TestEscenario_RegistroPerfilPasswordCarrito(t *testing.T) {
	s := newTestServer(t)

	// Registro con email único → 201 + token verificable.
	var reg map[string]string
	resp := s.do(t, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": "Ana", "email": "a@x.com", "password": "pw123456",
	}, &reg)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "customer", reg["role"], "rol por defecto debe ser customer")

	userID, _, err := pkgjwt.Parse(testJWTSecret, reg["token"])
	require.NoError(t, err)
	assert.Equal(t, reg["id"], userID, "el token debe decodificar al usuario creado")

	// GET /auth/me con el token → 200 con el mismo email.
	var me map[string]any
	resp = s.do(t, http.MethodGet, "/api/auth/me", reg["token"], nil, &me)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "a@x.com", me["email"])

	// Cambio de password con currentPassword incorrecto → 400.
	resp = s.do(t, http.MethodPut, "/api/auth/change-password", reg["token"], fiber.Map{
		"currentPassword": "equivocado", "newPassword": "nuevo123",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// POST /cart con productId malformado → 400 {"error":"ID not found"}.
	var cartErr map[string]string
	resp = s.do(t, http.MethodPost, "/api/cart", reg["token"], fiber.Map{
		"productId": "not-an-id",
	}, &cartErr)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "ID not found", cartErr["error"])
}

func TestRegistro_EmailDuplicado_NoPersiste(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "Ana", "dup@x.com", "")

	resp := s.do(t, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": "Otra", "email": "dup@x.com", "password": "pw123456",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	u, err := s.users.GetByEmail("dup@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.Name, "el usuario original no debe ser reemplazado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos: categoría referenciada, RBAC y política de propiedad
// ──────────────────────────────────────────────────────────────────────────────

func TestProductos_CrearConCategoriaValida_RoundTrip(t *testing.T) {
	s := newTestServer(t)
	_, vendorTok := s.register(t, "V", "v@x.com", "vendor")
	catID := s.createCategory(t, vendorTok, "Cakes")

	var created map[string]any
	resp := s.do(t, http.MethodPost, "/api/products", vendorTok, fiber.Map{
		"name": "Chocolate Cake", "price": "25.99", "category": catID,
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, created["inStock"], "inStock por defecto debe ser true")

	// Recuperable vía listado público, con la categoría intacta.
	var list []map[string]any
	resp = s.do(t, http.MethodGet, "/api/products", "", nil, &list)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list, 1)
	assert.Equal(t, created["id"], list[0]["id"])
	category := list[0]["category"].(map[string]any)
	assert.Equal(t, catID, category["id"])
}

func TestProductos_CategoriaInexistente_NoPersiste(t *testing.T) {
	s := newTestServer(t)
	_, vendorTok := s.register(t, "V", "v@x.com", "vendor")

	var out map[string]string
	resp := s.do(t, http.MethodPost, "/api/products", vendorTok, fiber.Map{
		"name": "Fantasma", "price": "1.00",
		"category": "7b8a2f1c-0000-0000-0000-000000000000", // uuid válido, inexistente
	}, &out)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Category not found in database", out["error"])
	assert.Zero(t, s.products.count(), "no debe persistirse ningún producto")
}

func TestProductos_CategoriaMalformada_Retorna400(t *testing.T) {
	s := newTestServer(t)
	_, vendorTok := s.register(t, "V", "v@x.com", "vendor")

	var out map[string]string
	resp := s.do(t, http.MethodPost, "/api/products", vendorTok, fiber.Map{
		"name": "X", "price": "1.00", "category": "no-es-uuid",
	}, &out)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Category ID is invalid", out["error"])
}

func TestProductos_CustomerBloqueado_SinEfectoParcial(t *testing.T) {
	s := newTestServer(t)
	_, customerTok := s.register(t, "C", "c@x.com", "")
	catID := s.createCategory(t, customerTok, "Cakes")

	resp := s.do(t, http.MethodPost, "/api/products", customerTok, fiber.Map{
		"name": "Prohibido", "price": "9.99", "category": catID,
	}, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Zero(t, s.products.count(), "un 403 nunca deja efecto parcial")
}

func TestProductos_VendorNoDuenio_Recibe403(t *testing.T) {
	s := newTestServer(t)
	_, vendor1Tok := s.register(t, "V1", "v1@x.com", "vendor")
	_, vendor2Tok := s.register(t, "V2", "v2@x.com", "vendor")
	_, adminTok := s.register(t, "Admin", "admin@x.com", "admin")
	catID := s.createCategory(t, vendor1Tok, "Cakes")

	var created map[string]any
	resp := s.do(t, http.MethodPost, "/api/products", vendor1Tok, fiber.Map{
		"name": "De V1", "price": "10.00", "category": catID,
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	productID := created["id"].(string)

	// Otro vendor no puede mutar ni borrar.
	resp = s.do(t, http.MethodPut, "/api/products/"+productID, vendor2Tok, fiber.Map{
		"name": "Robado",
	}, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = s.do(t, http.MethodDelete, "/api/products/"+productID, vendor2Tok, nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// El dueño sí puede.
	var updated map[string]any
	resp = s.do(t, http.MethodPut, "/api/products/"+productID, vendor1Tok, fiber.Map{
		"name": "Renombrado",
	}, &updated)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Renombrado", updated["name"])

	// Y un admin también, sin ser dueño.
	resp = s.do(t, http.MethodDelete, "/api/products/"+productID, adminTok, nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, s.products.count())
}

func TestProductos_DeleteAll_SoloAdmin(t *testing.T) {
	s := newTestServer(t)
	_, vendorTok := s.register(t, "V", "v@x.com", "vendor")
	_, adminTok := s.register(t, "Admin", "admin@x.com", "admin")
	catID := s.createCategory(t, vendorTok, "Cakes")

	resp := s.do(t, http.MethodPost, "/api/products", vendorTok, fiber.Map{
		"name": "Uno", "price": "5.00", "category": catID,
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = s.do(t, http.MethodDelete, "/api/products/delete-all", vendorTok, nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 1, s.products.count(), "el 403 no debe borrar nada")

	resp = s.do(t, http.MethodDelete, "/api/products/delete-all", adminTok, nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, s.products.count())
}

func TestProductos_IDMalformado_Retorna400(t *testing.T) {
	s := newTestServer(t)
	_, vendorTok := s.register(t, "V", "v@x.com", "vendor")

	var out map[string]string
	resp := s.do(t, http.MethodPut, "/api/products/not-an-id", vendorTok, fiber.Map{
		"name": "X",
	}, &out)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Product ID is invalid", out["error"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Carrito
// ──────────────────────────────────────────────────────────────────────────────

func TestCarrito_AgregarQuitarVaciar(t *testing.T) {
	s := newTestServer(t)
	_, vendorTok := s.register(t, "V", "v@x.com", "vendor")
	_, customerTok := s.register(t, "C", "c@x.com", "")
	catID := s.createCategory(t, vendorTok, "Cakes")

	var product map[string]any
	resp := s.do(t, http.MethodPost, "/api/products", vendorTok, fiber.Map{
		"name": "Torta", "price": "25.99", "category": catID,
	}, &product)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	productID := product["id"].(string)

	// Sin quantity → default 1.
	var item map[string]any
	resp = s.do(t, http.MethodPost, "/api/cart", customerTok, fiber.Map{
		"productId": productID,
	}, &item)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, float64(1), item["quantity"])

	// Cantidad negativa → 400 con detalle de validación, sin persistir nada.
	var qtyErr map[string]string
	resp = s.do(t, http.MethodPost, "/api/cart", customerTok, fiber.Map{
		"productId": productID, "quantity": -5,
	}, &qtyErr)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "quantity must be at least 1", qtyErr["error"])

	// Sin productId → 400 con el mensaje de siempre.
	var noIDErr map[string]string
	resp = s.do(t, http.MethodPost, "/api/cart", customerTok, fiber.Map{"quantity": 2}, &noIDErr)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "ID not found", noIDErr["error"])

	// Producto inexistente → 404.
	resp = s.do(t, http.MethodPost, "/api/cart", customerTok, fiber.Map{
		"productId": "7b8a2f1c-0000-0000-0000-000000000000",
	}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Listado con producto resuelto.
	var list []map[string]any
	resp = s.do(t, http.MethodGet, "/api/cart", customerTok, nil, &list)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list, 1)
	inlined := list[0]["product"].(map[string]any)
	assert.Equal(t, "Torta", inlined["name"])

	// Quitar ítem inexistente → 404; malformado → 400.
	resp = s.do(t, http.MethodDelete, "/api/cart/7b8a2f1c-0000-0000-0000-000000000000", customerTok, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var rmErr map[string]string
	resp = s.do(t, http.MethodDelete, "/api/cart/not-an-id", customerTok, nil, &rmErr)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "ID of cart is not correct", rmErr["error"])

	// Quitar el real y vaciar.
	var rmOK map[string]string
	resp = s.do(t, http.MethodDelete, "/api/cart/"+item["id"].(string), customerTok, nil, &rmOK)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Item removed from cart successfully", rmOK["message"])

	resp = s.do(t, http.MethodDelete, "/api/cart/clear", customerTok, nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Sin token → 401 en todas las rutas del carrito.
	resp = s.do(t, http.MethodGet, "/api/cart", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCategorias_CRUD(t *testing.T) {
	s := newTestServer(t)
	_, tok := s.register(t, "U", "u@x.com", "")

	// Crear sin nombre → 400 con detalle de validación.
	resp := s.do(t, http.MethodPost, "/api/categories", tok, fiber.Map{"description": "x"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	catID := s.createCategory(t, tok, "Desserts")

	// Listado público, sin token.
	var list []map[string]any
	resp = s.do(t, http.MethodGet, "/api/categories", "", nil, &list)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list, 1)
	assert.Equal(t, "Desserts", list[0]["name"])

	// ID malformado → 400; inexistente → 404.
	var delErr map[string]string
	resp = s.do(t, http.MethodDelete, "/api/categories/not-an-id", tok, nil, &delErr)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Category ID is invalid", delErr["error"])

	resp = s.do(t, http.MethodDelete, "/api/categories/7b8a2f1c-0000-0000-0000-000000000000", tok, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Borrar la real.
	var delOK map[string]string
	resp = s.do(t, http.MethodDelete, "/api/categories/"+catID, tok, nil, &delOK)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Category deleted", delOK["message"])

	// Vaciar la colección; el mensaje conserva su espacio inicial.
	s.createCategory(t, tok, "Drinks")
	var clearOK map[string]string
	resp = s.do(t, http.MethodDelete, "/api/categories/clear", tok, nil, &clearOK)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, " All Categories deleted successfully!", clearOK["message"])
}
