// Package entity 定义业务实体
package entity
