// Package service binds the resource client to one resource family per
// service: courses, lessons, tests, questions, users, departments,
// positions, reports, the audit log, and feedback.
//
// Services translate between wire and internal shapes through package
// wire, validate inputs locally before any network call, and expose the
// query keys their reads cache under. Errors from the client propagate
// unchanged; the only failures a service absorbs are the designed
// expected-empty cases (a 404 on a nested collection means the
// collection is empty, while a 404 on a single entity is a real
// not-found).
package service
