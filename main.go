package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/intersection-sim-oss/task"
	"github.com/tsinghua-fib-lab/intersection-sim-oss/utils/config"
	"github.com/tsinghua-fib-lab/intersection-sim-oss/utils/input"
	"gopkg.in/yaml.v2"
)

var (
	// 模拟任务名，用于日志标注
	job = flag.String("job", "job0", "the name of the whole simulation task")
	// 配置文件路径，为空则使用内置默认配置
	configPath = flag.String("config", "", "config file path (empty means built-in defaults)")
	// 随机流量模式的随机数种子，0表示取当前时间
	seed = flag.Uint64("seed", 0, "random density seed (0 means time-based)")

	// log
	logLevels = map[string]logrus.Level{
		"trace":    logrus.TraceLevel,
		"debug":    logrus.DebugLevel,
		"info":     logrus.InfoLevel,
		"warn":     logrus.WarnLevel,
		"error":    logrus.ErrorLevel,
		"critical": logrus.FatalLevel,
		"off":      logrus.PanicLevel,
	}
	logLevel = flag.String("log.level", "info", "日志级别（可选项：trace debug info warn error critical off）")

	log = logrus.WithField("module", "main")
)

func main() {
	flag.Parse()
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	// log: 运行时才修改
	if level, ok := logLevels[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		log.Panicf("log.level must be one of %v", logLevels)
	}
	// 获取配置
	c := config.Default()
	if *configPath != "" {
		file, err := os.ReadFile(*configPath)
		if err != nil {
			log.Panicf("config file load err: %v", err)
		}
		if err := yaml.UnmarshalStrict(file, &c); err != nil {
			log.Panicf("config file load err: %v", err)
		}
	}
	log.Infof("%+v", c)

	fmt.Println("Adaptive Traffic Light Simulator")
	fmt.Println("--------------------------------")

	// 交互式收集仿真参数，第一个提示读取失败视为正常提前退出
	session, ok := input.Collect(os.Stdin, os.Stdout)
	if !ok {
		log.Info("no cycle count given, exiting")
		return
	}

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}

	ctx := task.NewContext(*job, c, session, s, os.Stdout)
	ctx.Run()

	fmt.Println("\nSimulation finished.")
}
