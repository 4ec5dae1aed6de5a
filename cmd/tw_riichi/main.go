package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/kevin-chtw/tw_riichi/gamebase/mahjong"
	"github.com/kevin-chtw/tw_riichi/service"
	"github.com/kevin-chtw/tw_riichi/storage"
	"github.com/kevin-chtw/tw_riichi/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	pitaya "github.com/topfreegames/pitaya/v3/pkg"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	"github.com/topfreegames/pitaya/v3/pkg/config"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

var (
	verbose bool

	hand     mahjong.ManualHand
	rulePath string
	file     string

	configFile  string
	clusterMode bool
	logDir      string
)

var rootCmd = &cobra.Command{
	Use:   "tw_riichi",
	Short: "立直麻将和了判定",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logrus.WarnLevel
		if verbose {
			level = logrus.DebugLevel
		}
		opts := utils.DefaultLogOptions()
		opts.Dir = logDir
		logger.SetLogger(utils.Logger(level, opts))
	},
}

var judgeCmd = &cobra.Command{
	Use:   "judge [notation...]",
	Short: "判定一手牌，或用 --file 判定 yaml 牌谱中的所有手",
	Example: `  tw_riichi judge 1p1p1p2p2p2p3p3p3p4p4p4p5p ツモ5p
  tw_riichi judge --player West 5s6s7s4m5m6m4p4p4p5p6p西西 ロン西
  tw_riichi judge --file hands.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if file != "" {
			return judgeManual(file)
		}
		if len(args) == 0 {
			return fmt.Errorf("notation required")
		}
		rule := mahjong.DefaultRule()
		if rulePath != "" {
			var err error
			if rule, err = mahjong.LoadRule(rulePath); err != nil {
				return err
			}
		}
		hand.Notation = strings.Join(args, " ")
		ts, err := hand.Tilesets(rule)
		if err != nil {
			return err
		}
		printJudgment(mahjong.Judge(ts))
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "以 pitaya 远程服务的方式提供判定",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := service.DefaultConfig()
		if configFile != "" {
			var err error
			if conf, err = service.LoadConfig(configFile); err != nil {
				return err
			}
		}
		mode := pitaya.Standalone
		if clusterMode {
			mode = pitaya.Cluster
		}
		app := pitaya.NewDefaultApp(false, "riichi", mode, map[string]string{}, *config.NewDefaultPitayaConfig())
		defer app.Shutdown()

		judge, err := service.NewJudge(app, conf)
		if err != nil {
			return err
		}
		app.RegisterRemote(judge, component.WithName("judge"), component.WithNameFunc(strings.ToLower))
		if clusterMode {
			rules := storage.NewETCDRules(app.GetServer(), conf.Rule, conf.Etcd)
			if err := app.RegisterModule(rules, "riichiRules"); err != nil {
				return err
			}
			judge.SetRules(rules)
		}
		logger.Log.Infof("riichi judge serving, cluster=%v", clusterMode)
		app.Start()
		return nil
	},
}

func judgeManual(path string) error {
	m, err := mahjong.LoadManual(path)
	if err != nil {
		return err
	}
	failed := 0
	for i, h := range m.Hands {
		ts, err := h.Tilesets(m.Rule)
		if err != nil {
			color.New(color.FgHiRed).Printf("#%d %s: %v\n", i, h.Notation, err)
			failed++
			continue
		}
		j := mahjong.Judge(ts)
		printJudgment(j)
		if h.Want == "" {
			fmt.Println()
			continue
		}
		if got := judgmentText(j); got != h.Want {
			color.New(color.FgHiRed).Printf("#%d mismatch, want:\n%s\n", i, h.Want)
			failed++
		}
		fmt.Println()
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d hands failed", failed, len(m.Hands))
	}
	return nil
}

func judgmentText(j *mahjong.Judgment) string {
	if j == nil {
		return ""
	}
	return j.String()
}

func limitColor(l mahjong.ELimit) color.Attribute {
	switch l {
	case mahjong.LimitYakuman:
		return color.FgHiRed
	case mahjong.LimitSanbaiman, mahjong.LimitBaiman:
		return color.FgHiYellow
	case mahjong.LimitHaneman, mahjong.LimitMangan:
		return color.FgHiGreen
	}
	return color.FgHiWhite
}

func printJudgment(j *mahjong.Judgment) {
	if j == nil {
		color.New(color.FgHiBlack).Println("和了形ではありません")
		return
	}
	text := j.String()
	i := strings.LastIndexByte(text, '\n')
	fmt.Println(text[:i])
	color.New(limitColor(j.Limit())).Println(text[i+1:])
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "输出判定过程的调试日志")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "日志目录，为空时写到标准错误")

	judgeCmd.Flags().StringVar(&hand.Place, "place", "", "场风，東南西北或 East/South/West/North")
	judgeCmd.Flags().StringVar(&hand.Player, "player", "", "自风")
	judgeCmd.Flags().StringVar(&hand.Name, "name", "", "玩家名")
	judgeCmd.Flags().StringVar(&hand.Lizhi, "lizhi", "", "lizhi/ippatsu/double/double_ippatsu")
	judgeCmd.Flags().StringSliceVar(&hand.Lucky, "lucky", nil, "由调用方声明的役，如 嶺上開花,海底摸月")
	judgeCmd.Flags().StringVar(&rulePath, "rule", "", "规则 yaml 文件")
	judgeCmd.Flags().StringVar(&file, "file", "", "牌谱 yaml 文件")

	serveCmd.Flags().StringVar(&configFile, "configFile", "", "服务配置 yaml 文件")
	serveCmd.Flags().BoolVar(&clusterMode, "cluster", false, "以集群模式启动（需要 etcd 与 nats）")

	rootCmd.AddCommand(judgeCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
