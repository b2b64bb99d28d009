package model

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)
