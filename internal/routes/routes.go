package routes

import (
	"github.com/labstack/echo/v4"

	"alabaztrum_echo/internal/handlers"
	"alabaztrum_echo/web/templates/shared"
)

// Route maps a GET path to either a rendered view or a redirect target
type Route struct {
	Path       string
	View       handlers.View
	RedirectTo string
}

func page(path, template, title, nav string, crumbs ...shared.Breadcrumb) Route {
	return Route{
		Path: path,
		View: handlers.View{
			Template:    template,
			Title:       title,
			ActiveNav:   nav,
			Breadcrumbs: crumbs,
		},
	}
}

func redirect(path, target string) Route {
	return Route{Path: path, RedirectTo: target}
}

var (
	crumbAdmin    = handlers.Crumb("Admin", "/admin")
	crumbProducts = handlers.Crumb("Productos", "/admin/products")
	crumbBrands   = handlers.Crumb("Marcas", "/admin/brands")
	crumbTypes    = handlers.Crumb("Tipos de fragancia", "/admin/fragrance-types")
	crumbOrders   = handlers.Crumb("Pedidos", "/admin/orders")
	crumbMessages = handlers.Crumb("Mensajes", "/admin/messages")
	crumbComments = handlers.Crumb("Comentarios", "/admin/comments")
	crumbReviews  = handlers.Crumb("Reseñas del sitio", "/admin/site-reviews")
	crumbAyuda    = handlers.Crumb("Ayuda", "/ayuda/contacto")
)

// Table lists every page the server renders. Paths are unique.
func Table() []Route {
	current := func(label string) shared.Breadcrumb { return handlers.Crumb(label, "") }

	return []Route{
		// Storefront
		page("/", "index.html", "Inicio", "home"),
		page("/fragancias", "fragancias.html", "Fragancias", "fragancias", current("Fragancias")),
		page("/decants", "decants.html", "Decants", "decants", current("Decants")),
		page("/producto/:product_id", "producto.html", "Producto", "fragancias",
			handlers.Crumb("Fragancias", "/fragancias"), current("Producto")),
		page("/carrito", "carrito.html", "Carrito", "carrito", current("Carrito")),
		page("/checkout", "checkout.html", "Finalizar compra", "carrito",
			handlers.Crumb("Carrito", "/carrito"), current("Finalizar compra")),
		page("/mis-compras", "mis_compras.html", "Mis compras", "cuenta", current("Mis compras")),
		page("/favoritos", "favoritos.html", "Favoritos", "cuenta", current("Favoritos")),
		page("/buscar", "buscar.html", "Buscar", "", current("Buscar")),

		// Help center
		redirect("/ayuda", "/ayuda/contacto"),
		page("/ayuda/contacto", "ayuda/contacto.html", "Contacto", "ayuda", crumbAyuda, current("Contacto")),
		page("/ayuda/envios", "ayuda/envios.html", "Envíos", "ayuda", crumbAyuda, current("Envíos")),
		page("/ayuda/devoluciones", "ayuda/devoluciones.html", "Devoluciones", "ayuda", crumbAyuda, current("Devoluciones")),
		page("/ayuda/preguntas-frecuentes", "ayuda/preguntas_frecuentes.html", "Preguntas frecuentes", "ayuda",
			crumbAyuda, current("Preguntas frecuentes")),

		// Account
		page("/login", "auth/login.html", "Iniciar sesión", "cuenta", current("Iniciar sesión")),
		page("/register", "auth/register.html", "Crear cuenta", "cuenta", current("Crear cuenta")),
		page("/profile", "profile.html", "Mi perfil", "cuenta", current("Mi perfil")),

		// Back-office
		page("/admin", "admin/dashboard.html", "Panel de administración", "dashboard", current("Admin")),

		page("/admin/products", "admin/products.html", "Productos", "products", crumbAdmin, current("Productos")),
		page("/admin/products/add", "admin/add_product.html", "Agregar producto", "products",
			crumbAdmin, crumbProducts, current("Agregar")),
		page("/admin/products/edit/:product_id", "admin/edit_product.html", "Editar producto", "products",
			crumbAdmin, crumbProducts, current("Editar")),

		page("/admin/brands", "admin/brands.html", "Marcas", "brands", crumbAdmin, current("Marcas")),
		page("/admin/brands/add", "admin/brands_add.html", "Agregar marca", "brands",
			crumbAdmin, crumbBrands, current("Agregar")),
		page("/admin/brands/edit/:brand_id", "admin/brands_edit.html", "Editar marca", "brands",
			crumbAdmin, crumbBrands, current("Editar")),

		page("/admin/fragrance-types", "admin/fragrance_types.html", "Tipos de fragancia", "fragrance-types",
			crumbAdmin, current("Tipos de fragancia")),
		page("/admin/fragrance-types/add", "admin/fragrance_types_add.html", "Agregar tipo de fragancia", "fragrance-types",
			crumbAdmin, crumbTypes, current("Agregar")),
		page("/admin/fragrance-types/edit/:type_id", "admin/fragrance_types_edit.html", "Editar tipo de fragancia", "fragrance-types",
			crumbAdmin, crumbTypes, current("Editar")),

		page("/admin/orders", "admin/orders.html", "Pedidos", "orders", crumbAdmin, current("Pedidos")),
		page("/admin/orders/:order_id", "admin/order_detail.html", "Detalle del pedido", "orders",
			crumbAdmin, crumbOrders, current("Detalle")),
		page("/admin/orders/edit/:order_id", "admin/order_detail.html", "Editar pedido", "orders",
			crumbAdmin, crumbOrders, current("Editar")),

		page("/admin/messages", "admin/messages.html", "Mensajes", "messages", crumbAdmin, current("Mensajes")),
		page("/admin/messages/:message_id", "admin/message_detail.html", "Mensaje", "messages",
			crumbAdmin, crumbMessages, current("Detalle")),
		page("/admin/messages/edit/:message_id", "admin/message_detail.html", "Editar mensaje", "messages",
			crumbAdmin, crumbMessages, current("Editar")),

		page("/admin/comments", "admin/comments.html", "Comentarios", "comments", crumbAdmin, current("Comentarios")),
		page("/admin/comments/:comment_id", "admin/comment_detail.html", "Comentario", "comments",
			crumbAdmin, crumbComments, current("Detalle")),
		page("/admin/comments/edit/:comment_id", "admin/comment_detail.html", "Editar comentario", "comments",
			crumbAdmin, crumbComments, current("Editar")),

		page("/admin/site-reviews", "admin/site_reviews.html", "Reseñas del sitio", "site-reviews",
			crumbAdmin, current("Reseñas del sitio")),
		page("/admin/site-reviews/:review_id", "admin/site_review_detail.html", "Reseña", "site-reviews",
			crumbAdmin, crumbReviews, current("Detalle")),
		page("/admin/site-reviews/edit/:review_id", "admin/site_review_detail.html", "Editar reseña", "site-reviews",
			crumbAdmin, crumbReviews, current("Editar")),
	}
}

// Register attaches the route table and the health endpoint to e
func Register(e *echo.Echo, table []Route, pages *handlers.PageHandler, health *handlers.HealthHandler) {
	e.GET("/health", health.Health)

	for _, r := range table {
		if r.RedirectTo != "" {
			e.GET(r.Path, pages.Redirect(r.RedirectTo))
			continue
		}
		e.GET(r.Path, pages.Render(r.View))
	}
}
