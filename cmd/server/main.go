package main

import (
	"flag"

	be "project_management/be"
	"project_management/be/biz/config"
	"project_management/be/biz/db"
	"project_management/be/biz/util/logger"
)

//	@title			Project Management Auth API
//	@version		1.0
//	@description	Signup, login and token verification.
//	@BasePath		/
func main() {
	confPath := flag.String("conf", "conf/deploy.yml", "path of the yaml config file")
	flag.Parse()

	config.Init(*confPath)
	logger.Init()
	db.Init()

	be.NewEngine().Spin()
}
