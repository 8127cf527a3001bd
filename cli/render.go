package cli

import (
	"fmt"
	"github.com/viant/storefront"
	"github.com/viant/storefront/service/order"
	"github.com/viant/storefront/service/product"
	"github.com/viant/storefront/session"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

type table struct {
	writer *tabwriter.Writer
}

func newTable(w io.Writer, columns ...string) *table {
	ret := &table{writer: tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)}
	ret.row(columns...)
	return ret
}

func (t *table) row(values ...string) {
	fmt.Fprintln(t.writer, strings.Join(values, "\t"))
}

func (t *table) flush() error {
	return t.writer.Flush()
}

func renderProducts(w io.Writer, products []*product.Product) error {
	if len(products) == 0 {
		_, err := fmt.Fprintln(w, "No products found")
		return err
	}
	t := newTable(w, "ID", "TITLE", "CATEGORY", "PRICE", "STOCK")
	for _, p := range products {
		stock := fmt.Sprint(p.Stock)
		if !p.InStock() {
			stock = "out of stock"
		}
		t.row(p.ID, p.Title, p.Category, storefront.FormatCents(p.PriceCents), stock)
	}
	return t.flush()
}

func renderProduct(w io.Writer, p *product.Product) error {
	t := newTable(w, "FIELD", "VALUE")
	t.row("id", p.ID)
	t.row("title", p.Title)
	t.row("category", p.Category)
	t.row("price", storefront.FormatCents(p.PriceCents))
	t.row("stock", fmt.Sprint(p.Stock))
	if len(p.Images) > 0 {
		t.row("images", strings.Join(p.Images, ", "))
	}
	return t.flush()
}

func renderCart(w io.Writer, view *storefront.CartView) error {
	if view.IsEmpty() {
		_, err := fmt.Fprintln(w, "Your cart is empty")
		return err
	}
	t := newTable(w, "PRODUCT", "QUANTITY", "PRICE", "SUBTOTAL")
	for _, line := range view.Lines {
		t.row(line.ProductID, fmt.Sprint(line.Quantity), storefront.FormatCents(line.PriceCents), storefront.FormatCents(line.Subtotal))
	}
	t.row("", "", "TOTAL", storefront.FormatCents(view.Total))
	return t.flush()
}

func renderOrders(w io.Writer, orders []*order.Order, withUser bool) error {
	if len(orders) == 0 {
		_, err := fmt.Fprintln(w, "No orders yet")
		return err
	}
	columns := []string{"ID", "CREATED", "ITEMS", "TOTAL", "STATUS", "PAYMENT"}
	if withUser {
		columns = append(columns, "USER")
	}
	t := newTable(w, columns...)
	for _, o := range orders {
		values := []string{o.ID, o.CreatedAt.Local().Format(time.DateTime), fmt.Sprint(len(o.Items)), storefront.FormatCents(o.TotalCents), o.Status, o.PaymentStatus}
		if withUser {
			values = append(values, o.UserID)
		}
		t.row(values...)
	}
	return t.flush()
}

func renderUsers(w io.Writer, users []*session.User) error {
	t := newTable(w, "ID", "NAME", "EMAIL", "ROLE")
	for _, u := range users {
		t.row(u.ID, u.Name, u.Email, u.Role)
	}
	return t.flush()
}

func renderIdentity(w io.Writer, identity *storefront.Identity, navigation *storefront.Navigation) error {
	if identity.State == session.Anonymous {
		_, err := fmt.Fprintln(w, "Not logged in")
		return err
	}
	t := newTable(w, "FIELD", "VALUE")
	t.row("name", identity.User.Name)
	t.row("email", identity.User.Email)
	t.row("role", identity.User.Role)
	if claims := identity.Claims; claims != nil && claims.ExpiresAt != nil {
		t.row("expires", claims.ExpiresAt.Local().Format(time.DateTime))
	}
	var links []string
	for _, link := range []struct {
		name    string
		visible bool
	}{{"orders", navigation.Orders}, {"admin", navigation.Admin}, {"logout", navigation.Logout}} {
		if link.visible {
			links = append(links, link.name)
		}
	}
	t.row("commands", strings.Join(links, ", "))
	return t.flush()
}
