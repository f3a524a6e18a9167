package services

// Services defined in this package:
// - AuthService: login, token refresh and logout
// - RecordService: academic record reads and semester appends
// - StudentService: staff-side student account management
