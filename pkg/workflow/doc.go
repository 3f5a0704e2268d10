// Package workflow builds the traversal view of a Role/Status/Transition
// graph and runs structural validation over it: start-role uniqueness,
// reachability, terminal roles, orphans, and registration/institution
// binding completeness.
//
// Validation is a pure function over already-loaded configuration. Malformed
// input (dangling role ids) degrades to ordinary findings, never errors.
package workflow
