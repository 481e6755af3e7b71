// Package cart provides the Cart aggregate: the per-user mutable staging area
// of selected food items prior to order placement.
//
// The package includes:
//   - Cart: the aggregate root holding cart items, the running total price,
//     and an optimistic-lock version
//   - CartItem: a selected food with quantity, chosen ingredients, and special
//     instructions
//   - Ingredient: a selected ingredient reference
//
// Key business rules:
//   - The cart total always equals the sum of the item totals
//   - A cart with zero items has a zero total
//   - Clear empties the cart and resets the total; order placement calls it
//     exactly once per successful order
package cart
