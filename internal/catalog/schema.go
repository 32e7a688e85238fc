package catalog

// JSON schemas for the three catalog documents. Validation runs before
// decoding so malformed authored content fails loudly at load time instead
// of surfacing as zero values mid-session.

type docSchema struct {
	Name       string
	Definition map[string]any
}

var coursesSchema = &docSchema{
	Name: "courses",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"courses": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":          map[string]any{"type": "string", "minLength": 1},
						"title":       map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"chapters": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"id":    map[string]any{"type": "string", "minLength": 1},
									"title": map[string]any{"type": "string"},
									"videos": map[string]any{
										"type": "array",
										"items": map[string]any{
											"type": "object",
											"properties": map[string]any{
												"id":       map[string]any{"type": "string", "minLength": 1},
												"title":    map[string]any{"type": "string"},
												"duration": map[string]any{"type": "string"},
												"points":   map[string]any{"type": "integer", "minimum": 0},
											},
											"required": []any{"id"},
										},
									},
								},
								"required": []any{"id", "videos"},
							},
						},
					},
					"required": []any{"id", "chapters"},
				},
			},
		},
		"required": []any{"courses"},
	},
}

var quizzesSchema = &docSchema{
	Name: "quizzes",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"quizzes": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":        map[string]any{"type": "string", "minLength": 1},
						"courseId":  map[string]any{"type": "string", "minLength": 1},
						"chapterId": map[string]any{"type": "string", "minLength": 1},
						"title":     map[string]any{"type": "string"},
						"unlockRequirement": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"type": map[string]any{
									"type": "string",
									"enum": []any{"all-videos", "specific-video"},
								},
								"videoId": map[string]any{"type": "string"},
							},
							"required": []any{"type"},
						},
						"points":       map[string]any{"type": "integer", "minimum": 0},
						"passingScore": map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
					},
					"required": []any{"id", "courseId", "chapterId", "unlockRequirement"},
				},
			},
		},
		"required": []any{"quizzes"},
	},
}

var achievementsSchema = &docSchema{
	Name: "achievements",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"achievements": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":     map[string]any{"type": "string", "minLength": 1},
						"title":  map[string]any{"type": "string"},
						"icon":   map[string]any{"type": "string"},
						"points": map[string]any{"type": "integer", "minimum": 0},
						"condition": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"type": map[string]any{
									"type": "string",
									"enum": []any{"videos_watched", "course_complete"},
								},
								"count":    map[string]any{"type": "integer", "minimum": 1},
								"courseId": map[string]any{"type": "string"},
							},
							"required": []any{"type"},
						},
					},
					"required": []any{"id", "condition"},
				},
			},
		},
		"required": []any{"achievements"},
	},
}
