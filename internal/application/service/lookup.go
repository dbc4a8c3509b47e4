package service

import "github.com/sangkips/ventes-dashboard/internal/domain/entity"

// Labels shown when a form choice does not resolve
const (
	UnknownProductLabel = "Produit inconnu"
	NoClientLabel       = "Aucun"
)

// FindProduct returns the product with id among products, or nil
func FindProduct(products []entity.Product, id uint) *entity.Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}

// FindClient returns the client with id among clients, or nil
func FindClient(clients []entity.Client, id uint) *entity.Client {
	for i := range clients {
		if clients[i].ID == id {
			return &clients[i]
		}
	}
	return nil
}

// ProductLabel renders a product choice as "nom - categorie"
func ProductLabel(products []entity.Product, id uint) string {
	p := FindProduct(products, id)
	if p == nil {
		return UnknownProductLabel
	}
	return p.Name + " - " + p.Category
}

// ClientLabel renders a client choice by name. A nil id is the "no client"
// choice.
func ClientLabel(clients []entity.Client, id *uint) string {
	if id == nil {
		return NoClientLabel
	}
	c := FindClient(clients, *id)
	if c == nil {
		return NoClientLabel
	}
	return c.Name
}
