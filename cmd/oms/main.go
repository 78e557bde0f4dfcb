package main

import "github.com/d60-Lab/mock-oms/internal/cmd"

// @title Mock OMS API
// @version 1.0
// @description 订单、售后、发货与库存管理接口
// @BasePath /
// @securityDefinitions.basic BasicAuth
func main() {
	cmd.Execute()
}
