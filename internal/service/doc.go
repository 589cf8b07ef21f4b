// Package service contains the use cases behind the HTTP handlers. It
// coordinates the stores defined in internal/store and applies the
// transactional boundaries when an operation spans several tables.
//
// Key services:
//
//   - UserService: registration (user, account and carrier profile in one
//     transaction), profile reads and partial updates, soft deletion.
//   - AuthService: password login issuing access tokens, and logout through
//     the token revocation list.
//   - AccountService and CarrierService: the per-user sub-resources.
//
// Services assume access control already happened: the API layer runs the
// ownership guard before calling them. The one exception is UpdateUser,
// which checks that only admins change role or identity verification.
package service
