package services

// Services defined in this package:
// - FacultyService: CRUD over faculty records, ratification and eligibility refresh
// - StatisticsService: dashboard counters and department distribution
// - DocumentService: files attached to a faculty record
